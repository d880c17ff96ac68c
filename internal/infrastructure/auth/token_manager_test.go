package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret", 7*24*time.Hour)

	token, issued, err := m.Generate("u1", "seller", "ann@x.com", "Ann")
	require.NoError(t, err)
	assert.NotEmpty(t, issued.RegisteredClaims.ID)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "seller", claims.Type)
	assert.Equal(t, "ann@x.com", claims.Email)
	assert.Equal(t, "Ann", claims.Name)
	assert.Equal(t, issued.RegisteredClaims.ID, claims.RegisteredClaims.ID)

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), exp.Time, 5*time.Second)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	token, _, err := m.Generate("u1", "buyer", "b@x.com", "B")
	require.NoError(t, err)

	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_BadSignature(t *testing.T) {
	token, _, err := NewTokenManager("secret", time.Hour).Generate("u1", "buyer", "b@x.com", "B")
	require.NoError(t, err)

	_, err = NewTokenManager("other-secret", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_Malformed(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	_, err := m.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	token, _, err := m.Generate("u1", "buyer", "b@x.com", "B")
	require.NoError(t, err)
	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	_, err = m.Verify(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
