package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "customer", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := ExtractIdentityFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "customer", role)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "customer", -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractIdentityFromToken(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "customer", time.Hour)
	require.NoError(t, err)

	_, _, err = ExtractIdentityFromToken(token + "x")
	assert.Error(t, err)
}

func TestHashTokenStable(t *testing.T) {
	a := HashToken("some-token")
	b := HashToken("some-token")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, HashToken("other-token"))
}
