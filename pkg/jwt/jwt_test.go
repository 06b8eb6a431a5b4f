package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken(secret, "65f1c0ffee0123456789abcd", time.Hour)
	require.NoError(t, err)

	subject, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "65f1c0ffee0123456789abcd", subject)
}

func TestParseTokenRejects(t *testing.T) {
	secret := []byte("test-secret")

	expired, err := GenerateToken(secret, "u", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(secret, expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	other, err := GenerateToken([]byte("other"), "u", time.Hour)
	require.NoError(t, err)
	_, err = ParseToken(secret, other)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken(secret, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
