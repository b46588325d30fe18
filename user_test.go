package sessionauth_test

import (
	"testing"

	sessionauth "github.com/goliatone/go-session-auth"
	"github.com/stretchr/testify/assert"
)

func TestAuthUser(t *testing.T) {
	t.Run("should treat an empty auth id as anonymous", func(t *testing.T) {
		user := sessionauth.NewAuthUser("")
		assert.False(t, user.IsAuthenticated())
		assert.Equal(t, sessionauth.ActionPass, user.Action())
	})

	t.Run("should treat a non empty auth id as authenticated", func(t *testing.T) {
		user := sessionauth.NewAuthUser("user-123")
		assert.True(t, user.IsAuthenticated())
		assert.Equal(t, "user-123", user.AuthID())
	})

	t.Run("should carry the pending action", func(t *testing.T) {
		user := sessionauth.NewAuthUser("user-123")
		user.SetAction(sessionauth.ActionWritePermanent)
		assert.Equal(t, sessionauth.ActionWritePermanent, user.Action())
	})
}

func TestAction_String(t *testing.T) {
	tests := []struct {
		action sessionauth.Action
		want   string
	}{
		{action: sessionauth.ActionPass, want: "pass"},
		{action: sessionauth.ActionDelete, want: "delete"},
		{action: sessionauth.ActionWrite, want: "write"},
		{action: sessionauth.ActionWritePermanent, want: "write_permanent"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.action.String())
	}
}
