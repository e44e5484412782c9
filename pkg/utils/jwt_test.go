package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/oceanshop/storefront/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SessionTokenRoundTrip(t *testing.T) {
	token, err := CreateSessionToken("u1", "u1@example.com", "Sam", "secret")
	require.NoError(t, err)

	uid, email, displayName, err := ParseSessionToken(token, "secret")
	require.NoError(t, err)

	assert.Equal(t, "u1", uid)
	assert.Equal(t, "u1@example.com", email)
	assert.Equal(t, "Sam", displayName)
}

func Test_SessionTokenWrongSecret(t *testing.T) {
	token, err := CreateSessionToken("u1", "u1@example.com", "Sam", "secret")
	require.NoError(t, err)

	_, _, _, err = ParseSessionToken(token, "other-secret")
	assert.ErrorIs(t, err, errs.ErrNotLoggedIn)
}

func Test_SessionTokenExpired(t *testing.T) {
	claims := jwt.MapClaims{
		"authorized": true,
		"uid":        "u1",
		"exp":        time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, _, _, err = ParseSessionToken(token, "secret")
	assert.ErrorIs(t, err, errs.ErrExpiredToken)
}

func Test_SessionTokenGarbage(t *testing.T) {
	_, _, _, err := ParseSessionToken("not-a-token", "secret")
	assert.ErrorIs(t, err, errs.ErrNotLoggedIn)
}
