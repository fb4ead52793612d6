package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, PasswordCost, cost)

	assert.True(t, CheckPasswordHash("secret1", hash))
	assert.False(t, CheckPasswordHash("secret2", hash))

	again, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again)
}

func TestGravatarURL(t *testing.T) {
	url := GravatarURL("  A@X.com ")
	assert.Equal(t, GravatarURL("a@x.com"), url)
	assert.True(t, strings.HasPrefix(url, "//www.gravatar.com/avatar/"))
	assert.True(t, strings.HasSuffix(url, "?s=200&r=pg&d=mm"))
	assert.NotEqual(t, url, GravatarURL("b@x.com"))
}
