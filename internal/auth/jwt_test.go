package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens_IssueAndVerify(t *testing.T) {
	tokens := NewTokens("test-secret", 0)

	signed, expiresAt, err := tokens.Issue("maria")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(DefaultTokenTTL), expiresAt, 5*time.Second)

	subject, err := tokens.Subject(signed)
	require.NoError(t, err)
	assert.Equal(t, "maria", subject)
}

func TestTokens_Expired(t *testing.T) {
	tokens := NewTokens("test-secret", time.Minute)
	issued := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	tokens.now = func() time.Time { return issued }

	signed, _, err := tokens.Issue("maria")
	require.NoError(t, err)

	tokens.now = func() time.Time { return issued.Add(59 * time.Second) }
	_, err = tokens.Subject(signed)
	assert.NoError(t, err)

	tokens.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = tokens.Subject(signed)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokens_Rejects(t *testing.T) {
	tokens := NewTokens("test-secret", time.Minute)
	valid := jwt.RegisteredClaims{
		Subject:   "maria",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}

	otherSecret, err := jwt.NewWithClaims(jwt.SigningMethodHS256, valid).SignedString([]byte("other"))
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, valid).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "maria"}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"wrong secret":    otherSecret,
		"alg none":        none,
		"missing exp":     noExpiry,
		"missing sub":     noSubject,
		"malformed":       "not-a-token",
		"empty":           "",
		"truncated parts": "a.b",
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := tokens.Subject(token)
			assert.Error(t, err)
		})
	}
}
