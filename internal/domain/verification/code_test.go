package verification

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	code, err := NewCode(" Student@Example.COM ", now)
	require.NoError(t, err)
	assert.Equal(t, "student@example.com", code.Email())
	assert.Regexp(t, `^[0-9]{6}$`, code.Value())
	assert.True(t, code.ExpiresAt().Equal(now.Add(CodeTTL)))
	assert.True(t, code.CreatedAt().Equal(now))

	_, err = NewCode("not-an-email", now)
	assert.Error(t, err)
}

func TestCodeIsExpiredAt(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	code, err := NewCode("student@example.com", now)
	require.NoError(t, err)

	assert.False(t, code.IsExpiredAt(now))
	assert.False(t, code.IsExpiredAt(now.Add(CodeTTL)), "the expiry instant itself is still valid")
	assert.True(t, code.IsExpiredAt(now.Add(CodeTTL+time.Second)))
}

func TestValidateCodeShape(t *testing.T) {
	assert.NoError(t, ValidateCodeShape("000000"))
	assert.NoError(t, ValidateCodeShape("123456"))

	for _, bad := range []string{"", "12345", "1234567", "12345a", "abcdef", " 123456", "123456 "} {
		assert.Error(t, ValidateCodeShape(bad), "value %q", bad)
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"student@example.com",
		"Student@Example.COM",
		" padded@example.com ",
		"first.last+tag@sub.example.co",
	}
	for _, email := range valid {
		assert.NoError(t, ValidateEmail(email), "email %q", email)
	}

	invalid := []string{
		"",
		"   ",
		"no-at-sign",
		"@nodomain",
		"nolocal@",
		"two@@ats",
		"a@b@c",
		"long" + strings.Repeat("x", MaxEmailLength) + "@example.com",
	}
	for _, email := range invalid {
		assert.Error(t, ValidateEmail(email), "email %q", email)
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "student@example.com", NormalizeEmail("  Student@EXAMPLE.com\t"))
}

func TestReconstructCode(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	code, err := ReconstructCode(7, "student@example.com", "123456", now.Add(CodeTTL), now)
	require.NoError(t, err)
	assert.Equal(t, uint(7), code.ID())

	_, err = ReconstructCode(0, "student@example.com", "123456", now, now)
	assert.Error(t, err)

	_, err = ReconstructCode(7, "student@example.com", "12345", now, now)
	assert.Error(t, err, "stored values must keep the six-digit shape")
}
