package template

import "pipeforge/internal/domain/config"

// Info describes one template known to a registry.
type Info struct {
	Identifier   string
	Name         string
	Type         config.TemplateType
	Scope        config.Scope
	VersionLabel string
	Description  string
}

// Registry is an explicitly owned, read-only set of known templates. It is
// constructed once and passed into the Manager; nothing in this package
// keeps ambient process-wide state.
type Registry struct {
	entries []Info
}

// NewRegistry creates a registry over the given entries. Listing preserves
// registration order.
func NewRegistry(entries ...Info) *Registry {
	return &Registry{entries: append([]Info(nil), entries...)}
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	return len(r.entries)
}

// VisibleAt returns every template visible when listing at the requested
// scope. A template registered at scope S is visible at requested scope R
// iff level(S) >= level(R): account templates are visible everywhere, org
// templates at org and project scope, project templates only at project
// scope.
func (r *Registry) VisibleAt(scope config.Scope) []Info {
	requested := scope.Level()
	var visible []Info
	for _, entry := range r.entries {
		if entry.Scope.Level() >= requested {
			visible = append(visible, entry)
		}
	}
	return visible
}
