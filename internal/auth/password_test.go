package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Vectus-Drive/backend/internal/auth"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-pass")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, auth.CheckPassword("s3cret-pass", hash))
	assert.False(t, auth.CheckPassword("wrong-pass", hash))
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	first, err := auth.HashPassword("same-input")
	assert.NoError(t, err)
	second, err := auth.HashPassword("same-input")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, auth.CheckPassword("same-input", first))
	assert.True(t, auth.CheckPassword("same-input", second))
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	assert.False(t, auth.CheckPassword("anything", "not-a-bcrypt-hash"))
}
