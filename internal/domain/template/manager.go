// Package template assembles reusable template artifacts and answers
// scope-filtered listings over a registry of known templates.
package template

import (
	"pipeforge/internal/domain/build"
	"pipeforge/internal/domain/config"
	"pipeforge/internal/domain/render"
)

// Manager generates template artifacts and lists known templates. The
// registry is injected so tests and callers can substitute their own.
type Manager struct {
	registry *Registry
}

// NewManager creates a Manager over the given registry. A nil registry is
// treated as empty.
func NewManager(registry *Registry) *Manager {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Manager{registry: registry}
}

// Generate renders a template configuration to its text artifact. The spec
// body is built by dispatch on the declared type; a declared type with no
// builder is a caller invariant violation and panics with
// build.UnsupportedTemplateTypeError. An absent or empty spec body omits
// the spec key.
func (m *Manager) Generate(cfg config.TemplateConfig) string {
	body := build.Mapping()
	build.PutString(body, "name", cfg.Name)
	build.PutString(body, "identifier", build.Identifier(cfg.Name, cfg.Identifier))
	build.PutString(body, "versionLabel", cfg.VersionLabel)
	build.PutString(body, "type", cfg.Type.String())
	build.PutString(body, "description", cfg.Description)
	build.PutStringMap(body, "tags", cfg.Tags)
	build.PutString(body, "orgIdentifier", cfg.OrgIdentifier)
	build.PutString(body, "projectIdentifier", cfg.ProjectIdentifier)
	build.Put(body, "spec", build.TemplateSpec(cfg.Type, cfg.Spec))

	return render.MustMarshal(build.Document("template", body))
}

// List returns every registered template visible at the requested scope,
// in registration order.
func (m *Manager) List(scope config.Scope) []Info {
	return m.registry.VisibleAt(scope)
}
