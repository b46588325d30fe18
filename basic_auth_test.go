package sessionauth_test

import (
	"encoding/base64"
	"testing"

	sessionauth "github.com/goliatone/go-session-auth"
	"github.com/stretchr/testify/assert"
)

func basicHeader(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

func TestCheckBasicAuth(t *testing.T) {
	cfg := sessionauth.BasicAuthConfig{Username: "admin", Password: "open sesame"}

	tests := []struct {
		name      string
		header    string
		wantError bool
	}{
		{name: "should accept the configured credentials", header: basicHeader("admin", "open sesame")},
		{name: "should accept a lowercase scheme", header: "basic " + base64.StdEncoding.EncodeToString([]byte("admin:open sesame"))},
		{name: "should reject a missing header", header: "", wantError: true},
		{name: "should reject the bearer scheme", header: "Bearer abc", wantError: true},
		{name: "should reject undecodable credentials", header: "Basic not!base64!", wantError: true},
		{name: "should reject credentials without a separator", header: "Basic " + base64.StdEncoding.EncodeToString([]byte("adminonly")), wantError: true},
		{name: "should reject a wrong username", header: basicHeader("root", "open sesame"), wantError: true},
		{name: "should reject a wrong password", header: basicHeader("admin", "open"), wantError: true},
		{name: "should reject an empty password", header: basicHeader("admin", ""), wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newFakeContext()
			if tt.header != "" {
				ctx.WithHeader("Authorization", tt.header)
			}

			err := sessionauth.CheckBasicAuth(ctx, cfg)
			if tt.wantError {
				assert.ErrorIs(t, err, sessionauth.ErrUnauthorizedBasicAuth)
				assert.Equal(t, "Basic", ctx.setHeaders["WWW-Authenticate"],
					"failures must challenge the client")
			} else {
				assert.NoError(t, err)
				assert.Empty(t, ctx.setHeaders)
			}
		})
	}

	t.Run("should verify a password containing the separator", func(t *testing.T) {
		cfg := sessionauth.BasicAuthConfig{Username: "admin", Password: "pass:word"}
		ctx := newFakeContext().WithHeader("Authorization", basicHeader("admin", "pass:word"))

		assert.NoError(t, sessionauth.CheckBasicAuth(ctx, cfg))
	})

	t.Run("should fail outside a request context", func(t *testing.T) {
		assert.ErrorIs(t, sessionauth.CheckBasicAuth(nil, cfg), sessionauth.ErrNoRequestContext)
	})
}
