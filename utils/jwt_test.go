package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "customer", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, "secret")
	require.NoError(t, err)
	require.EqualValues(t, 42, claims.UserID)
	require.Equal(t, "customer", claims.Role)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(42, "customer", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	require.Error(t, err)
}

func TestTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken(42, "customer", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret")
	require.Error(t, err)
}
