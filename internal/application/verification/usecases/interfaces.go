package usecases

import "context"

// CodeMailer delivers verification codes out of band. Sends are not
// retried; a failed send does not invalidate the issued code.
type CodeMailer interface {
	SendVerificationCode(ctx context.Context, email, code string) error
}
