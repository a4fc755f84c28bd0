package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap parameters keep the tests fast
var testParams = Argon2Params{Time: 1, Memory: 1024, Parallelism: 1, SaltLength: 16, KeyLength: 32}

func TestArgon2Hasher_HashAndVerify(t *testing.T) {
	h := NewArgon2Hasher(testParams)

	hash, err := h.Hash("Admin@123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=1024,t=1,p=1$"))

	ok, err := h.Verify("Admin@123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("admin@123", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2Hasher_SaltedHashesDiffer(t *testing.T) {
	h := NewArgon2Hasher(testParams)
	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestArgon2Hasher_VerifyUsesEncodedParams(t *testing.T) {
	hash, err := NewArgon2Hasher(testParams).Hash("pw")
	require.NoError(t, err)

	ok, err := NewArgon2Hasher(DefaultArgon2Params).Verify("pw", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestArgon2Hasher_InvalidHash(t *testing.T) {
	h := NewArgon2Hasher(testParams)
	for _, bad := range []string{"", "plaintext", "$bcrypt$v=19$m=1,t=1,p=1$a$b", "$argon2id$v=19$garbage$a$b"} {
		ok, err := h.Verify("pw", bad)
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrInvalidHash, bad)
	}
}
