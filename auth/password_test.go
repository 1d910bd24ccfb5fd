package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	ok, err := CheckPassword("hunter2hunter2", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckPasswordWrong(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)

	ok, err := CheckPassword("battery-staple", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckPasswordTamperedHash(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)

	// Flip a character in the encoded key segment.
	parts := strings.Split(hash, "$")
	require.Len(t, parts, 6)
	last := []byte(parts[5])
	if last[0] == 'A' {
		last[0] = 'B'
	} else {
		last[0] = 'A'
	}
	parts[5] = string(last)

	ok, err := CheckPassword("correct-horse", strings.Join(parts, "$"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	for _, bad := range []string{
		"",
		"plainhash",
		"$bcrypt$v=19$m=19456,t=2,p=1$abc$def",
		"$argon2id$v=19$m=19456,t=2,p=1$not-base64!!$def",
	} {
		_, err := CheckPassword("whatever", bad)
		assert.Error(t, err, "hash %q", bad)
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	a, err := HashPassword("same-password")
	require.NoError(t, err)
	b, err := HashPassword("same-password")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
