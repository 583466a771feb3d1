package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	for range 5 {
		secret := uuid.NewString()

		hash, err := hasher.Hash(secret)
		require.NoError(t, err)
		require.NotEmpty(t, hash)
		assert.NotEqual(t, secret, hash)

		assert.True(t, hasher.Check(secret, hash))
		assert.False(t, hasher.Check(uuid.NewString(), hash))
		assert.False(t, hasher.Check("", hash))
	}
}

func TestBcryptHasher_SameInputDifferentRecords(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("swordfish")
	require.NoError(t, err)
	second, err := hasher.Hash("swordfish")
	require.NoError(t, err)

	// A fresh salt per hash: the records differ but both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("swordfish", first))
	assert.True(t, hasher.Check("swordfish", second))
}

func TestBcryptHasher_CheckAgainstGarbageHash(t *testing.T) {
	hasher := NewBcryptHasher()

	assert.False(t, hasher.Check("swordfish", "not a bcrypt record"))
	assert.False(t, hasher.Check("swordfish", ""))
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasherWithCost(99)

	hash, err := hasher.Hash("swordfish")
	require.NoError(t, err)
	assert.True(t, hasher.Check("swordfish", hash))
}
