package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := NewTokenManager("test-secret")

	token, err := m.Issue("user-123", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.VerifyHeader("Bearer " + token)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.UserID)
	require.Equal(t, "alice", claims.Username)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenManager_MissingOrMalformedHeader(t *testing.T) {
	m := NewTokenManager("test-secret")

	_, err := m.VerifyHeader("")
	require.ErrorIs(t, err, ErrTokenMissing)

	_, err = m.VerifyHeader("Basic dXNlcjpwYXNz")
	require.ErrorIs(t, err, ErrTokenMissing)

	_, err = m.VerifyHeader("Bearer ")
	require.Error(t, err)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	m := NewTokenManager("test-secret")
	other := NewTokenManager("another-secret")

	token, err := m.Issue("user-123", "alice")
	require.NoError(t, err)

	_, err = other.VerifyHeader("Bearer " + token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_Expired(t *testing.T) {
	m := &TokenManager{secret: []byte("test-secret"), lifetime: -time.Minute}

	token, err := m.Issue("user-123", "alice")
	require.NoError(t, err)

	_, err = m.VerifyHeader("Bearer " + token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_Garbage(t *testing.T) {
	m := NewTokenManager("test-secret")

	_, err := m.VerifyHeader("Bearer not.a.token")
	require.ErrorIs(t, err, ErrTokenInvalid)
}
