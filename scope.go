package sessionauth

import (
	"strings"
	"time"

	"github.com/goliatone/go-router"
)

// Scope is one authentication track: a cookie name, salt, and transport mode
// plus the request hooks that resolve, mutate, and reconcile the session
// user. Scopes are safe for concurrent use; all mutable state lives in the
// request's Locals bag, never in the Scope itself.
type Scope struct {
	cfg        Config
	serializer TokenSerializer
	newUser    UserFactory
	logger     Logger
}

// NewScope validates cfg (after filling unset optional fields) and builds a
// scope with the default serializer and user factory.
func NewScope(cfg Config) (*Scope, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Scope{
		cfg:        cfg,
		serializer: NewSignedSerializer([]byte(cfg.SecretKey), []byte(cfg.Salt)),
		newUser: func(authID string) User {
			return NewAuthUser(authID)
		},
		logger: defLogger{},
	}

	if cfg.Salt == DefaultSalt {
		s.logger.Warn("scope %q uses the default token salt; override Config.Salt in production", cfg.CookieName)
	}

	return s, nil
}

func (s *Scope) WithLogger(logger Logger) *Scope {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// WithSerializer swaps the token codec, e.g. to change claims layout or key
// handling. The serializer must honor the TokenSerializer contract.
func (s *Scope) WithSerializer(serializer TokenSerializer) *Scope {
	if serializer != nil {
		s.serializer = serializer
	}
	return s
}

// WithUserFactory swaps the type of user handed to handlers.
func (s *Scope) WithUserFactory(factory UserFactory) *Scope {
	if factory != nil {
		s.newUser = factory
	}
	return s
}

// Config returns the scope's immutable configuration.
func (s *Scope) Config() Config {
	return s.cfg
}

// DumpToken signs authID with the scope's serializer. Usable outside a live
// request, e.g. for test fixtures or out-of-band token generation.
func (s *Scope) DumpToken(authID string) (string, error) {
	return s.serializer.DumpToken(authID)
}

// LoadToken verifies a raw token against the scope's key and duration.
func (s *Scope) LoadToken(token string) (string, error) {
	return s.serializer.LoadToken(token, s.cfg.Duration)
}

// ResolveUser reads the inbound credential and builds a fresh user with no
// pending action. Absent or unverifiable credentials yield an anonymous
// user; no error ever reaches the caller. Most code wants LoadUser, which
// memoizes the result for the request.
func (s *Scope) ResolveUser(c RequestContext) User {
	var authID string
	if s.cfg.Mode == ModeBearer {
		authID = s.loadBearer(c)
	} else {
		authID = s.loadCookie(c)
	}
	return s.newUser(authID)
}

// LoadUser returns the request's user, resolving it on first access and
// caching it in the Locals bag. Verification runs at most once per request;
// mutations through LoginUser and LogoutUser replace the cached user so
// later reads observe them without re-decoding.
func (s *Scope) LoadUser(c RequestContext) User {
	if c == nil {
		return s.newUser("")
	}

	if cached, ok := s.peekUser(c); ok {
		return cached
	}

	user := s.ResolveUser(c)
	c.Locals(s.cfg.AttributeName, user)
	return user
}

// peekUser reads the memoized user without triggering resolution.
func (s *Scope) peekUser(c RequestContext) (User, bool) {
	cached, ok := c.Locals(s.cfg.AttributeName).(User)
	return cached, ok
}

// LoginUser starts a session for user: the scope's reconcile step will write
// a credential cookie, permanent when remember is true. The given user
// becomes the request's current user.
func (s *Scope) LoginUser(c RequestContext, user User, remember ...bool) error {
	if c == nil {
		return ErrNoRequestContext
	}

	action := ActionWrite
	if len(remember) > 0 && remember[0] {
		action = ActionWritePermanent
	}

	user.SetAction(action)
	c.Locals(s.cfg.AttributeName, user)
	return nil
}

// LogoutUser ends the session: the current user becomes anonymous and the
// reconcile step clears the credential cookie.
func (s *Scope) LogoutUser(c RequestContext) error {
	if c == nil {
		return ErrNoRequestContext
	}

	user := s.newUser("")
	user.SetAction(ActionDelete)
	c.Locals(s.cfg.AttributeName, user)
	return nil
}

// RenewLogin refreshes the credential's expiry without re-authenticating:
// the current user keeps its auth id and the reconcile step writes a fresh
// permanent cookie.
func (s *Scope) RenewLogin(c RequestContext) error {
	if c == nil {
		return ErrNoRequestContext
	}

	s.LoadUser(c).SetAction(ActionWritePermanent)
	return nil
}

// AfterRequest reconciles the pending action into the outgoing response. It
// runs exactly once per request, after the handler; Middleware arranges
// that. A scope no handler touched has nothing pending, so the inbound
// credential is never decoded here. In bearer mode the response is never
// mutated: the client owns the token, so pending writes only produce a
// warning.
func (s *Scope) AfterRequest(c RequestContext) {
	if c == nil {
		return
	}

	user, ok := s.peekUser(c)
	if !ok {
		return
	}

	if s.cfg.Mode == ModeBearer {
		if user.Action() != ActionPass {
			s.logger.Warn("login/logout/renew have no effect in bearer mode")
		}
		return
	}

	s.reconcileCookie(c, user)
}

// AfterWebSocket is the reconcile hook for long-lived connections. Cookie
// directives issued after the websocket handshake are unreliable, so the
// write is still attempted but flagged.
func (s *Scope) AfterWebSocket(c RequestContext) {
	if c == nil {
		return
	}

	user, ok := s.peekUser(c)
	if !ok {
		return
	}

	if s.cfg.Mode == ModeBearer {
		if user.Action() != ActionPass {
			s.logger.Warn("login/logout/renew have no effect in bearer mode")
		}
		return
	}

	if user.Action() != ActionPass {
		s.logger.Warn("auth cookies set on websocket responses may be ignored by the client")
	}

	s.reconcileCookie(c, user)
}

// Middleware wraps handlers so AfterRequest runs once the handler returns,
// whether or not it errored: a guard rejection still reconciles, while an
// aborted connection never reaches this point and leaves the client's prior
// credential authoritative.
func (s *Scope) Middleware() router.MiddlewareFunc {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(c router.Context) error {
			err := next(c)
			s.AfterRequest(c)
			return err
		}
	}
}

func (s *Scope) reconcileCookie(c RequestContext, user User) {
	switch user.Action() {
	case ActionDelete:
		c.Cookie(s.clearedCookie())
	case ActionWrite, ActionWritePermanent:
		token, err := s.serializer.DumpToken(user.AuthID())
		if err != nil {
			s.logger.Error("failed to encode auth cookie: %v", err)
			return
		}

		cookie := s.newCookie(token)
		if user.Action() == ActionWritePermanent {
			cookie.Expires = time.Now().Add(s.cfg.Duration)
		}
		c.Cookie(cookie)
	}
}

func (s *Scope) newCookie(value string) *router.Cookie {
	return &router.Cookie{
		Name:     s.cfg.CookieName,
		Value:    value,
		Domain:   s.cfg.CookieDomain,
		Path:     s.cfg.CookiePath,
		HTTPOnly: s.cfg.CookieHTTPOnly,
		Secure:   s.cfg.CookieSecure,
		SameSite: s.cfg.CookieSameSite,
	}
}

func (s *Scope) clearedCookie() *router.Cookie {
	cookie := s.newCookie("")
	cookie.Expires = time.Now().Add(-time.Hour * 24 * 365)
	return cookie
}

func (s *Scope) loadCookie(c RequestContext) string {
	token := c.Cookies(s.cfg.CookieName)
	if token == "" {
		return ""
	}
	return s.loadToken(token)
}

func (s *Scope) loadBearer(c RequestContext) string {
	raw := c.GetString(router.HeaderAuthorization, "")
	if len(raw) < 7 || !strings.EqualFold(raw[:6], "bearer") {
		return ""
	}
	if raw[6] != ' ' && raw[6] != '\t' {
		return ""
	}

	token := strings.TrimSpace(raw[6:])
	if token == "" {
		return ""
	}
	return s.loadToken(token)
}

func (s *Scope) loadToken(token string) string {
	authID, err := s.serializer.LoadToken(token, s.cfg.Duration)
	if err != nil {
		// expired and forged tokens both mean "no prior authentication"
		s.logger.Debug("auth token rejected: %v", err)
		return ""
	}
	return authID
}
