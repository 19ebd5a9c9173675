package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	t.Parallel()

	h := BcryptHasher{Cost: bcrypt.MinCost}
	for _, secret := range []string{"Secret123!", "", "pässwörd", "short"} {
		hash, err := h.Hash(secret)
		require.NoError(t, err)
		assert.True(t, h.Verify(secret, hash), "secret %q should verify against its own hash", secret)
	}
}

func TestBcryptHasher_Salted(t *testing.T) {
	t.Parallel()

	h := BcryptHasher{Cost: bcrypt.MinCost}
	h1, err := h.Hash("same-secret")
	require.NoError(t, err)
	h2, err := h.Hash("same-secret")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "two hashes of the same secret must differ")
	assert.True(t, h.Verify("same-secret", h1))
	assert.True(t, h.Verify("same-secret", h2))
}

func TestBcryptHasher_WrongPassword(t *testing.T) {
	t.Parallel()

	h := BcryptHasher{Cost: bcrypt.MinCost}
	hash, err := h.Hash("right")
	require.NoError(t, err)
	assert.False(t, h.Verify("wrong", hash))
}

func TestBcryptHasher_MalformedStoredHash(t *testing.T) {
	t.Parallel()

	h := BcryptHasher{Cost: bcrypt.MinCost}
	assert.False(t, h.Verify("anything", ""))
	assert.False(t, h.Verify("anything", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("anything", "$2b$garbage"))
}

func TestBcryptHasher_TruncatesAt72Bytes(t *testing.T) {
	t.Parallel()

	h := BcryptHasher{Cost: bcrypt.MinCost}
	prefix := strings.Repeat("a", 72)

	hash, err := h.Hash(prefix + "tail-one")
	require.NoError(t, err)

	// everything past byte 72 is ignored at hash and verify time alike
	assert.True(t, h.Verify(prefix+"tail-two", hash))
	assert.True(t, h.Verify(prefix, hash))

	// a difference inside the first 72 bytes still matters
	assert.False(t, h.Verify(strings.Repeat("a", 71)+"b", hash))
}

func TestBcryptHasher_TruncationSplitsMultiByteRunes(t *testing.T) {
	t.Parallel()

	// "é" is two bytes; with 71 leading bytes the cut at 72 lands in the
	// middle of the rune. Both inputs share the same first 72 bytes, so
	// they must hash and verify identically.
	h := BcryptHasher{Cost: bcrypt.MinCost}
	s1 := strings.Repeat("a", 71) + "é"
	s2 := strings.Repeat("a", 71) + "éxyz"

	hash, err := h.Hash(s1)
	require.NoError(t, err)
	assert.True(t, h.Verify(s2, hash))
}
