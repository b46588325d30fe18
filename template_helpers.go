package sessionauth

import (
	"github.com/goliatone/go-router"
)

// TemplateContext returns the view-context entries the scope contributes to
// rendered templates, mirroring the "current_user" convention: merge it into
// the bind map passed to ctx.Render.
func (s *Scope) TemplateContext(c RequestContext) router.ViewContext {
	return router.ViewContext{
		"current_user": s.LoadUser(c),
	}
}

// TemplateContext is the registry-level variant fed by the singleton scope.
func (r *Registry) TemplateContext(c RequestContext) router.ViewContext {
	scope, err := r.Default()
	if err != nil {
		return router.ViewContext{"current_user": NewAuthUser("")}
	}
	return scope.TemplateContext(c)
}
