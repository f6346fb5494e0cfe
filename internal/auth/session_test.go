package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionIDsAreUnique(t *testing.T) {
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id := NewSessionID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate session id %q", id)
		seen[id] = struct{}{}
	}
}

func TestSessionIDIsCanonicalUUID(t *testing.T) {
	id := NewSessionID()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, parsed.String())
}
