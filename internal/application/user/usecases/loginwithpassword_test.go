package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhall/internal/domain/user"
	"studyhall/internal/shared/errors"
)

func TestLoginWithPassword(t *testing.T) {
	stored := reconstructUser(7, "student@example.com", "hashed:correct horse", user.RoleUser)
	userRepo := &mockUserRepository{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			assert.Equal(t, "student@example.com", email)
			return stored, nil
		},
	}
	hasher := &mockPasswordHasher{
		compareFn: func(hash, password string) error {
			assert.Equal(t, "hashed:correct horse", hash)
			assert.Equal(t, "correct horse", password)
			return nil
		},
	}
	tokens := &mockTokenIssuer{
		issueFn: func(userID uint, role string) (string, int64, error) {
			assert.Equal(t, uint(7), userID)
			assert.Equal(t, "user", role)
			return "signed-token", 86400, nil
		},
	}

	uc := NewLoginWithPasswordUseCase(userRepo, hasher, tokens, testLogger())

	result, err := uc.Execute(context.Background(), LoginWithPasswordCommand{
		Email:    " Student@Example.com ",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.Token)
	assert.Equal(t, int64(86400), result.ExpiresIn)
	assert.Equal(t, uint(7), result.UserID)
	assert.Equal(t, "user", result.Role)
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLoginWithPasswordUniformRejection(t *testing.T) {
	stored := reconstructUser(7, "student@example.com", "hashed:correct horse", user.RoleUser)

	t.Run("unknown email", func(t *testing.T) {
		uc := NewLoginWithPasswordUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockTokenIssuer{}, testLogger())
		_, err := uc.Execute(context.Background(), LoginWithPasswordCommand{Email: "nobody@example.com", Password: "whatever"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid email or password")
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := &mockUserRepository{
			getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return stored, nil
			},
		}
		hasher := &mockPasswordHasher{
			compareFn: func(hash, password string) error {
				return fmt.Errorf("hash mismatch")
			},
		}
		uc := NewLoginWithPasswordUseCase(userRepo, hasher, &mockTokenIssuer{}, testLogger())
		_, err := uc.Execute(context.Background(), LoginWithPasswordCommand{Email: "student@example.com", Password: "wrong"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid email or password")
	})
}

func TestLoginWithPasswordValidation(t *testing.T) {
	uc := NewLoginWithPasswordUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockTokenIssuer{}, testLogger())

	_, err := uc.Execute(context.Background(), LoginWithPasswordCommand{Email: "not-an-email", Password: "x"})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), LoginWithPasswordCommand{Email: "s@example.com", Password: ""})
	assert.True(t, errors.IsValidationError(err))
}

func TestLoginWithPasswordStoreFailure(t *testing.T) {
	userRepo := &mockUserRepository{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return nil, fmt.Errorf("store down")
		},
	}

	uc := NewLoginWithPasswordUseCase(userRepo, &mockPasswordHasher{}, &mockTokenIssuer{}, testLogger())

	_, err := uc.Execute(context.Background(), LoginWithPasswordCommand{Email: "s@example.com", Password: "x"})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}
