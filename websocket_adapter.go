package sessionauth

import (
	"context"

	"github.com/goliatone/go-router"
)

// WSTokenValidator implements go-router's websocket token validator on top
// of a scope's serializer, so websocket handshakes authenticate with the
// same tokens the scope mints for requests.
type WSTokenValidator struct {
	scope *Scope
}

func NewWSTokenValidator(scope *Scope) *WSTokenValidator {
	return &WSTokenValidator{scope: scope}
}

// Validate verifies the raw token against the scope's key and duration.
func (w *WSTokenValidator) Validate(tokenString string) (router.WSAuthClaims, error) {
	authID, err := w.scope.LoadToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &wsUserClaims{authID: authID}, nil
}

// wsUserClaims adapts a bare auth id to router.WSAuthClaims. This package
// models authentication only, so the resource-permission checks pass for any
// authenticated peer and role checks report no role.
type wsUserClaims struct {
	authID string
}

func (c *wsUserClaims) Subject() string {
	return c.authID
}

func (c *wsUserClaims) UserID() string {
	return c.authID
}

func (c *wsUserClaims) Role() string {
	return ""
}

func (c *wsUserClaims) CanRead(resource string) bool {
	return true
}

func (c *wsUserClaims) CanEdit(resource string) bool {
	return true
}

func (c *wsUserClaims) CanCreate(resource string) bool {
	return true
}

func (c *wsUserClaims) CanDelete(resource string) bool {
	return true
}

func (c *wsUserClaims) HasRole(role string) bool {
	return false
}

func (c *wsUserClaims) IsAtLeast(minRole string) bool {
	return false
}

// NewWSAuthMiddleware returns a websocket authentication middleware backed
// by this scope's tokens.
func (s *Scope) NewWSAuthMiddleware(config ...router.WSAuthConfig) router.WebSocketMiddleware {
	var cfg router.WSAuthConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	cfg.TokenValidator = NewWSTokenValidator(s)

	return router.NewWSAuth(cfg)
}

// WSUserFromContext returns the user authenticated during the websocket
// handshake, rebuilt through the scope's user factory.
func (s *Scope) WSUserFromContext(ctx context.Context) (User, bool) {
	claims, ok := router.WSAuthClaimsFromContext(ctx)
	if !ok {
		return nil, false
	}
	return s.newUser(claims.UserID()), true
}
