package sessionauth

import (
	"github.com/goliatone/go-router"
)

// RequireUser returns ErrUnauthorized when the request's user is anonymous,
// resolving it (memoized) if needed. Exposed so hosts can guard outside the
// middleware chain, e.g. inside a websocket upgrade handler.
func (s *Scope) RequireUser(c RequestContext) error {
	if c == nil {
		return ErrNoRequestContext
	}
	if !s.LoadUser(c).IsAuthenticated() {
		return ErrUnauthorized
	}
	return nil
}

// LoginRequired guards a route: anonymous requests fail with ErrUnauthorized
// and the handler never runs. Authenticated requests run the handler with
// the user also placed in the standard context for code below the router
// layer. The guard does not redirect; map ErrUnauthorized in the host's
// error handler.
func (s *Scope) LoginRequired() router.MiddlewareFunc {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(c router.Context) error {
			if err := s.RequireUser(c); err != nil {
				return err
			}
			c.SetContext(WithUserContext(c.Context(), s.LoadUser(c)))
			return next(c)
		}
	}
}
