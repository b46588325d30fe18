package sessionauth_test

import (
	"testing"

	sessionauth "github.com/goliatone/go-session-auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWSTokenValidator_Validate(t *testing.T) {
	scope := newTestScope(t)
	validator := sessionauth.NewWSTokenValidator(scope)

	t.Run("should accept a token minted by the scope", func(t *testing.T) {
		token, err := scope.DumpToken("user-123")
		require.NoError(t, err)

		claims, err := validator.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.Subject())
		assert.Equal(t, "user-123", claims.UserID())
		assert.Empty(t, claims.Role())
	})

	t.Run("should reject a token from another scope", func(t *testing.T) {
		other := newTestScope(t, func(cfg *sessionauth.Config) {
			cfg.Salt = "another salt"
		})
		token, err := other.DumpToken("user-123")
		require.NoError(t, err)

		_, err = validator.Validate(token)
		assert.Error(t, err)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := validator.Validate("not a token")
		assert.Error(t, err)
	})
}
