// Package embedded provides the default template registry seed data.
package embedded

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"pipeforge/internal/domain/config"
	"pipeforge/internal/domain/template"
)

//go:embed registry.yaml
var registryYAML []byte

// registryDTO is the data transfer object for parsing the seed file.
type registryDTO struct {
	Templates []entryDTO `yaml:"templates"`
}

type entryDTO struct {
	Identifier   string `yaml:"identifier"`
	Name         string `yaml:"name"`
	Type         string `yaml:"type"`
	Scope        string `yaml:"scope"`
	VersionLabel string `yaml:"versionLabel"`
	Description  string `yaml:"description,omitempty"`
}

// LoadRegistry loads the embedded default registry.
func LoadRegistry() (*template.Registry, error) {
	var dto registryDTO
	if err := yaml.Unmarshal(registryYAML, &dto); err != nil {
		return nil, fmt.Errorf("parse registry seed: %w", err)
	}

	entries := make([]template.Info, 0, len(dto.Templates))
	for _, e := range dto.Templates {
		scope, err := config.ParseScope(e.Scope)
		if err != nil {
			return nil, fmt.Errorf("registry entry %s: %w", e.Identifier, err)
		}
		typ := config.TemplateType(e.Type)
		if !typ.IsValid() {
			return nil, fmt.Errorf("registry entry %s: unknown template type %q", e.Identifier, e.Type)
		}
		entries = append(entries, template.Info{
			Identifier:   e.Identifier,
			Name:         e.Name,
			Type:         typ,
			Scope:        scope,
			VersionLabel: e.VersionLabel,
			Description:  e.Description,
		})
	}
	return template.NewRegistry(entries...), nil
}
