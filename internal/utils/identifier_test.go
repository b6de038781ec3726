package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUniqueID_FirstTry(t *testing.T) {
	calls := 0
	id, err := NewUniqueID(func(string) (bool, error) {
		calls++
		return false, nil
	})
	require.NoError(t, err)
	require.Len(t, id, 36)
	require.Equal(t, 1, calls)
}

func TestNewUniqueID_RegeneratesOnCollision(t *testing.T) {
	seen := make([]string, 0, 3)
	id, err := NewUniqueID(func(candidate string) (bool, error) {
		seen = append(seen, candidate)
		// Report the first two candidates as taken.
		return len(seen) < 3, nil
	})
	require.NoError(t, err)
	require.Len(t, seen, 3)
	require.Equal(t, seen[2], id)
	require.NotEqual(t, seen[0], id)
	require.NotEqual(t, seen[1], id)
}

func TestNewUniqueID_CheckError(t *testing.T) {
	boom := errors.New("db down")
	_, err := NewUniqueID(func(string) (bool, error) {
		return false, boom
	})
	require.ErrorIs(t, err, boom)
}
