package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := VerifyPassword("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := HashPassword("same password")
	require.NoError(t, err)
	second, err := HashPassword("same password")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	_, err := VerifyPassword("anything", "not-a-phc-string")
	assert.Error(t, err)

	_, err = VerifyPassword("anything", "$bcrypt$v=19$m=65536,t=1,p=4$abc$def")
	assert.Error(t, err)
}
