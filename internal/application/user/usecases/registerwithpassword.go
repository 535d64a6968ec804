package usecases

import (
	"context"

	"studyhall/internal/domain/user"
	"studyhall/internal/domain/verification"
	"studyhall/internal/shared/errors"
	"studyhall/internal/shared/logger"
)

type RegisterWithPasswordCommand struct {
	Email    string
	Name     string
	Password string
	Code     string
}

type RegisterWithPasswordResult struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// RegisterWithPasswordUseCase creates an account for an email that holds a
// valid one-time verification code. The duplicate check runs before the code
// is consumed so a rejected registration does not burn the code.
type RegisterWithPasswordUseCase struct {
	userRepo user.Repository
	verifier EmailVerifier
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterWithPasswordUseCase(
	userRepo user.Repository,
	verifier EmailVerifier,
	hasher PasswordHasher,
	logger logger.Interface,
) *RegisterWithPasswordUseCase {
	return &RegisterWithPasswordUseCase{
		userRepo: userRepo,
		verifier: verifier,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterWithPasswordUseCase) Execute(ctx context.Context, cmd RegisterWithPasswordCommand) (*RegisterWithPasswordResult, error) {
	if err := verification.ValidateEmail(cmd.Email); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}
	email := verification.NormalizeEmail(cmd.Email)

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "email", email, "error", err)
		return nil, errors.NewInternalError("failed to register user")
	}
	if exists {
		return nil, errors.NewConflictError("email is already registered")
	}

	if err := uc.verifier.VerifyCode(ctx, email, cmd.Code); err != nil {
		return nil, err
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to register user")
	}

	newUser, err := user.NewUser(email, cmd.Name, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		// Races with a concurrent registration surface here.
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		uc.logger.Errorw("failed to create user", "email", email, "error", err)
		return nil, errors.NewInternalError("failed to register user")
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "email", email)

	return &RegisterWithPasswordResult{
		UserID: newUser.ID(),
		Email:  newUser.Email(),
		Name:   newUser.Name(),
	}, nil
}
