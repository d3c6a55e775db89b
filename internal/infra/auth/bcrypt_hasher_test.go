package auth

import (
	"testing"

	"pressroom/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	password := "correct horse battery staple"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong password", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	h1, err := hasher.Hash("same password")
	require.NoError(t, err)
	h2, err := hasher.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, hasher.Check("same password", h1))
	assert.True(t, hasher.Check("same password", h2))
}

func TestBcryptHasher_CheckGarbageHash(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	assert.False(t, hasher.Check("anything", "not-a-bcrypt-hash"))
}
