package sessionauth

import (
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/goliatone/go-router"
)

// BasicAuthConfig holds the static credentials BasicAuthRequired compares
// against. This guard is orthogonal to the token system: no cookie, no
// serializer, no session state.
type BasicAuthConfig struct {
	Username string
	Password string
}

// BasicAuthRequired guards a route with HTTP Basic authentication. Any
// failure (missing header, wrong scheme, credential mismatch) sets the
// WWW-Authenticate challenge on the response and fails with
// ErrUnauthorizedBasicAuth; the handler never runs.
func BasicAuthRequired(cfg BasicAuthConfig) router.MiddlewareFunc {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(c router.Context) error {
			if err := CheckBasicAuth(c, cfg); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// CheckBasicAuth verifies the request's Basic credentials against cfg. The
// password comparison is constant time; the username must match exactly.
func CheckBasicAuth(c RequestContext, cfg BasicAuthConfig) error {
	if c == nil {
		return ErrNoRequestContext
	}

	username, password, ok := parseBasicAuth(c.GetString(router.HeaderAuthorization, ""))
	if !ok ||
		username != cfg.Username ||
		subtle.ConstantTimeCompare([]byte(password), []byte(cfg.Password)) != 1 {
		c.SetHeader("WWW-Authenticate", "Basic")
		return ErrUnauthorizedBasicAuth
	}

	return nil
}

// parseBasicAuth splits an Authorization header into its credential pair.
func parseBasicAuth(raw string) (username, password string, ok bool) {
	const prefix = "basic "
	if len(raw) < len(prefix) || !strings.EqualFold(raw[:len(prefix)], prefix) {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(raw[len(prefix):]))
	if err != nil {
		return "", "", false
	}

	username, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", false
	}

	return username, password, true
}
