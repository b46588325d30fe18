package sessionauth

import (
	"context"

	"github.com/goliatone/go-router"
)

// RequestContext is the slice of router.Context this package touches: the
// inbound cookie/header accessors, the outgoing cookie and header setters,
// and the per-request Locals bag used to memoize the resolved user. Any
// router.Context satisfies it; tests supply lightweight fakes.
type RequestContext interface {
	Context() context.Context
	Cookie(cookie *router.Cookie)
	Cookies(key string, defaultValue ...string) string
	GetString(key string, defaultValue string) string
	SetHeader(key string, value string) router.Context
	Locals(key any, value ...any) any
}

var _ RequestContext = router.Context(nil)

var userCtxKey = &contextKey{"user"}

type contextKey struct {
	name string
}

// WithUserContext stores the resolved user in a standard context so code
// below the router layer can read it without a router.Context.
func WithUserContext(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userCtxKey, user)
}

// UserFromContext finds the user placed by WithUserContext.
func UserFromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(userCtxKey).(User)
	return user, ok
}
