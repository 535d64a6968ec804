package verification

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"
)

// CodeTTL is how long an issued code stays valid.
const CodeTTL = 10 * time.Minute

// MaxEmailLength bounds accepted email addresses (RFC 5321 octet limit).
const MaxEmailLength = 254

var codeShape = regexp.MustCompile(`^[0-9]{6}$`)

// Code is a short-lived numeric credential proving control of an email
// address. A code is single-use and single-target; at most one active code
// exists per email at any instant.
type Code struct {
	id        uint
	email     string
	value     string
	expiresAt time.Time
	createdAt time.Time
}

// NewCode issues a fresh code for the given (already validated) email.
// The value is drawn uniformly from [000000, 999999] with crypto/rand;
// rand.Int performs rejection sampling internally, so there is no modulo
// bias.
func NewCode(email string, now time.Time) (*Code, error) {
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}

	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	return &Code{
		email:     NormalizeEmail(email),
		value:     fmt.Sprintf("%06d", n.Int64()),
		expiresAt: now.Add(CodeTTL),
		createdAt: now,
	}, nil
}

// ReconstructCode reconstructs a code from persistence.
func ReconstructCode(id uint, email, value string, expiresAt, createdAt time.Time) (*Code, error) {
	if id == 0 {
		return nil, fmt.Errorf("code ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !codeShape.MatchString(value) {
		return nil, fmt.Errorf("stored code has invalid shape")
	}

	return &Code{
		id:        id,
		email:     email,
		value:     value,
		expiresAt: expiresAt,
		createdAt: createdAt,
	}, nil
}

func (c *Code) ID() uint             { return c.id }
func (c *Code) Email() string        { return c.email }
func (c *Code) Value() string        { return c.value }
func (c *Code) ExpiresAt() time.Time { return c.expiresAt }
func (c *Code) CreatedAt() time.Time { return c.createdAt }

// IsExpiredAt reports whether the code has expired at the given instant.
// Expiry is re-checked at verification time; cleanup sweeps are
// housekeeping only.
func (c *Code) IsExpiredAt(now time.Time) bool {
	return c.expiresAt.Before(now)
}

// SetID sets the code ID (only for persistence layer use)
func (c *Code) SetID(id uint) error {
	if id == 0 {
		return fmt.Errorf("code ID cannot be zero")
	}
	c.id = id
	return nil
}

// ValidateCodeShape checks that a submitted code is exactly six digits.
// Shape failures never touch storage.
func ValidateCodeShape(value string) error {
	if !codeShape.MatchString(value) {
		return fmt.Errorf("code must be exactly 6 digits")
	}
	return nil
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail performs the local syntactic check: exactly one @ with
// non-empty local and domain parts, within the length bound. Anything
// stricter is the mail provider's problem.
func ValidateEmail(email string) error {
	normalized := NormalizeEmail(email)
	if normalized == "" {
		return fmt.Errorf("email is required")
	}
	if len(normalized) > MaxEmailLength {
		return fmt.Errorf("email cannot exceed %d characters", MaxEmailLength)
	}
	at := strings.Count(normalized, "@")
	if at != 1 {
		return fmt.Errorf("invalid email format")
	}
	parts := strings.SplitN(normalized, "@", 2)
	if parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("invalid email format")
	}
	return nil
}
