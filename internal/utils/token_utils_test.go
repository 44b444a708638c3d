package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTokenSecret = "test-secret-key-that-is-long-enough"

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("user-1", testTokenSecret, time.Hour, "erp-test")
	require.NoError(t, err)

	claims, err := ParseAccessToken(token, testTokenSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "erp-test", claims.Issuer)
}

func TestParseAccessToken_Rejects(t *testing.T) {
	expired, err := GenerateAccessToken("user-1", testTokenSecret, -time.Minute, "erp-test")
	require.NoError(t, err)
	_, err = ParseAccessToken(expired, testTokenSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	valid, err := GenerateAccessToken("user-1", testTokenSecret, time.Hour, "erp-test")
	require.NoError(t, err)
	_, err = ParseAccessToken(valid, "another-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	noSubject, err := GenerateAccessToken("", testTokenSecret, time.Hour, "erp-test")
	require.NoError(t, err)
	_, err = ParseAccessToken(noSubject, testTokenSecret)
	assert.ErrorIs(t, err, ErrMissingSubject)

	_, err = ParseAccessToken("not-a-token", testTokenSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}
