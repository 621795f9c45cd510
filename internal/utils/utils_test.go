package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBRL(t *testing.T) {
	cases := map[string]string{
		"0":         "R$ 0,00",
		"50":        "R$ 50,00",
		"1234.5":    "R$ 1.234,50",
		"1000000":   "R$ 1.000.000,00",
		"-80":       "-R$ 80,00",
		"999.999":   "R$ 1.000,00",
		"123456.78": "R$ 123.456,78",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatBRL(decimal.RequireFromString(in)), in)
	}
}

func TestHashPassword(t *testing.T) {
	_, err := HashPassword("abc")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	hash, err := HashPassword("abcdef")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("abcdef", hash))
	assert.False(t, CheckPasswordHash("abcdeg", hash))
}

func TestSessionJWT(t *testing.T) {
	token, expiresAt, err := GenerateSessionJWT(3, "sess-a", "secret", time.Hour, "test")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.NoError(t, ValidateSessionClaims(claims, "sess-a", 3))
	assert.ErrorIs(t, ValidateSessionClaims(claims, "sess-b", 3), ErrTokenSessionMismatch)
	assert.ErrorIs(t, ValidateSessionClaims(claims, "sess-a", 4), ErrTokenSessionMismatch)

	_, err = ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
}
