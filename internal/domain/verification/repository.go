package verification

import (
	"context"
	"time"
)

// Repository persists one-time codes. Every terminal state of a code
// converges on row deletion: verified, superseded, and swept-expired codes
// are all removed rather than flagged.
type Repository interface {
	Create(ctx context.Context, code *Code) error
	// DeleteByEmail removes every code for the email, expired or not.
	// Issue calls this to enforce the single-active-code invariant.
	DeleteByEmail(ctx context.Context, email string) error
	// DeleteExpired removes codes whose expiry predates the given instant.
	// Housekeeping only: verification re-checks expiry itself.
	DeleteExpired(ctx context.Context, before time.Time) error
	// ConsumeMatching atomically finds and deletes the row matching both
	// email and value, returning the deleted code or (nil, nil) when no
	// row matched. The find-and-delete must be a single store operation so
	// two concurrent verifications of the same code cannot both succeed.
	ConsumeMatching(ctx context.Context, email, value string) (*Code, error)
}

// IssueLimiter bounds how often codes may be issued to one email.
// Issue-rate state cannot live on the code rows themselves, because issuing
// supersedes (deletes) prior rows.
type IssueLimiter interface {
	// AllowIssue reports whether another code may be issued to the email
	// within the trailing window. A rejected call must not consume a slot.
	AllowIssue(ctx context.Context, email string) (bool, error)
}
