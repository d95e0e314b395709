package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessJWTRoundTrip(t *testing.T) {
	secret := "test-access-token-secret"

	t.Run("Valid Token Returns Email Claim", func(t *testing.T) {
		token, err := GenerateAccessJWT("patient@example.com", secret, 1)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		email, err := ParseAccessJWT(token, secret)
		assert.NoError(t, err)
		assert.Equal(t, "patient@example.com", email)
	})

	t.Run("Wrong Secret Rejected", func(t *testing.T) {
		token, err := GenerateAccessJWT("patient@example.com", secret, 1)
		assert.NoError(t, err)

		_, err = ParseAccessJWT(token, "another-secret")
		assert.Error(t, err, "a token signed with a different secret must not verify")
	})

	t.Run("Expired Token Rejected", func(t *testing.T) {
		token, err := GenerateAccessJWT("patient@example.com", secret, -1)
		assert.NoError(t, err)

		_, err = ParseAccessJWT(token, secret)
		assert.Error(t, err, "a token past its expiry must not verify")
	})

	t.Run("Garbage Token Rejected", func(t *testing.T) {
		_, err := ParseAccessJWT("not.a.token", secret)
		assert.Error(t, err)
	})
}
