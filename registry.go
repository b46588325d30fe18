package sessionauth

import (
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-router"
)

// Registry holds the scopes registered for one application. It exists so
// multi-identity setups (say, a staff track and an admin track) can coexist
// in a process while the common single-scope case keeps a convenient
// CurrentUser accessor. The registry is an explicit value the host owns;
// there is no package-level instance.
//
// Register before serving traffic and treat the registry as read-only
// afterwards; it is not synchronized for concurrent registration.
type Registry struct {
	scopes []*Scope
	logger Logger
}

func NewRegistry() *Registry {
	return &Registry{logger: defLogger{}}
}

func (r *Registry) WithLogger(logger Logger) *Registry {
	if logger != nil {
		r.logger = logger
	}
	return r
}

// Register adds a scope. Sharing an attribute name, cookie name, or salt
// with an already registered scope is reported as a warning, not an error:
// the scopes keep working but can read each other's tokens, which is almost
// certainly insecure. A second singleton scope is an error; exactly one
// scope may feed CurrentUser.
func (r *Registry) Register(scope *Scope) error {
	if scope == nil {
		return goerrors.New("cannot register a nil scope", goerrors.CategoryBadInput)
	}

	for _, existing := range r.scopes {
		if existing.cfg.AttributeName == scope.cfg.AttributeName ||
			existing.cfg.CookieName == scope.cfg.CookieName ||
			existing.cfg.Salt == scope.cfg.Salt {
			r.logger.Warn(
				"scope %q shares an attribute name, cookie name, or salt with scope %q; they may read each other's tokens",
				scope.cfg.CookieName, existing.cfg.CookieName,
			)
		}
	}

	if scope.cfg.Singleton {
		if existing := r.singleton(); existing != nil {
			return goerrors.New(
				"multiple singleton scopes registered; mark all but one Config.Singleton = false",
				goerrors.CategoryConflict,
			)
		}
	}

	r.scopes = append(r.scopes, scope)
	return nil
}

// Scopes returns the registered scopes in registration order.
func (r *Registry) Scopes() []*Scope {
	return r.scopes
}

// Default returns the singleton scope.
func (r *Registry) Default() (*Scope, error) {
	if scope := r.singleton(); scope != nil {
		return scope, nil
	}
	return nil, goerrors.New(
		"no singleton scope registered; resolve users through an explicit scope",
		goerrors.CategoryNotFound,
	)
}

// CurrentUser is the ambient accessor: the singleton scope's user for the
// active request. With no singleton scope it returns an anonymous user.
func (r *Registry) CurrentUser(c RequestContext) User {
	scope, err := r.Default()
	if err != nil {
		return NewAuthUser("")
	}
	return scope.LoadUser(c)
}

// Middleware runs every registered scope's after-request reconciliation
// around a handler, mirroring how each scope would install its own hook.
func (r *Registry) Middleware() router.MiddlewareFunc {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(c router.Context) error {
			err := next(c)
			for _, scope := range r.scopes {
				scope.AfterRequest(c)
			}
			return err
		}
	}
}

func (r *Registry) singleton() *Scope {
	for _, scope := range r.scopes {
		if scope.cfg.Singleton {
			return scope
		}
	}
	return nil
}
