package usecases

import "context"

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues signed access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uint, role string) (token string, expiresIn int64, err error)
}

// EmailVerifier consumes a one-time verification code for an email address.
// A nil error means the code was valid and has been consumed.
type EmailVerifier interface {
	VerifyCode(ctx context.Context, email, code string) error
}
