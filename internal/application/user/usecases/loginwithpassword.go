package usecases

import (
	"context"

	"studyhall/internal/domain/user"
	"studyhall/internal/domain/verification"
	"studyhall/internal/shared/errors"
	"studyhall/internal/shared/logger"
)

type LoginWithPasswordCommand struct {
	Email    string
	Password string
}

type LoginWithPasswordResult struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
}

// LoginWithPasswordUseCase authenticates by email and password and issues an
// access token. Unknown email and wrong password produce the same error.
type LoginWithPasswordUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*LoginWithPasswordResult, error) {
	if err := verification.ValidateEmail(cmd.Email); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Password == "" {
		return nil, errors.NewValidationError("password is required")
	}
	email := verification.NormalizeEmail(cmd.Email)

	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to look up user", "email", email, "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}
	if u == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.hasher.Compare(u.PasswordHash(), cmd.Password); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	token, expiresIn, err := uc.tokens.Issue(u.ID(), string(u.Role()))
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &LoginWithPasswordResult{
		Token:     token,
		ExpiresIn: expiresIn,
		UserID:    u.ID(),
		Email:     u.Email(),
		Name:      u.Name(),
		Role:      string(u.Role()),
	}, nil
}
