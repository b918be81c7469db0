// Файл: pkg/utils/auth_utils_test.go
package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret-password")
	require.NoError(t, err)

	assert.NotEqual(t, "secret-password", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"), "ожидается bcrypt-хеш")
}

func TestHashPassword_DifferentSaltEachTime(t *testing.T) {
	first, err := HashPassword("secret-password")
	require.NoError(t, err)
	second, err := HashPassword("secret-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "соль должна быть случайной")
	assert.NoError(t, ComparePasswords(first, "secret-password"))
	assert.NoError(t, ComparePasswords(second, "secret-password"))
}

func TestComparePasswords(t *testing.T) {
	hash, err := HashPassword("secret-password")
	require.NoError(t, err)

	assert.NoError(t, ComparePasswords(hash, "secret-password"))
	assert.Error(t, ComparePasswords(hash, "wrong-password"))
	assert.Error(t, ComparePasswords(hash, ""))
}

func TestComparePasswords_MalformedHash(t *testing.T) {
	assert.Error(t, ComparePasswords("not-a-bcrypt-hash", "secret-password"))
	assert.Error(t, ComparePasswords("", "secret-password"))
}
