package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashAndVerify(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret")
	require.NoError(t, err)

	assert.True(t, h.Verify("secret", hash))
	assert.False(t, h.Verify("wrong", hash))
}

func TestPasswordHashIsSalted(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	first, err := h.Hash("secret")
	require.NoError(t, err)
	second, err := h.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("secret", first))
	assert.True(t, h.Verify("secret", second))
}

func TestVerifyMalformedHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	assert.False(t, h.Verify("secret", ""))
	assert.False(t, h.Verify("secret", "not-a-bcrypt-hash"))
}

func TestHasherCostOutOfRange(t *testing.T) {
	// Out-of-range work factors fall back to the bcrypt default instead of
	// failing every Hash call.
	h := NewPasswordHasher(99)
	hash, err := h.Hash("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
