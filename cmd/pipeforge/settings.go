package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"pipeforge/internal/domain/config"
)

// defaultSettingsFile is consulted when --settings is not given.
const defaultSettingsFile = "pipeforge.toml"

// settings are workspace-level defaults applied to configurations that do
// not carry their own identifiers. Scope is never a setting: parsed
// templates always resolve their scope from the document or its
// identifiers.
type settings struct {
	OrgIdentifier     string `toml:"org_identifier"`
	ProjectIdentifier string `toml:"project_identifier"`
}

// loadSettings reads the settings file. A missing default file yields
// empty settings; a missing explicit file is an error.
func loadSettings(path string) (settings, error) {
	explicit := path != ""
	if !explicit {
		path = defaultSettingsFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return settings{}, nil
		}
		return settings{}, fileReadError(path, err)
	}

	var s settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return settings{}, newUsageError(
			fmt.Sprintf("settings file %q is not valid TOML", path),
			"fix the syntax error or remove the file to use defaults",
			err,
		)
	}
	return s, nil
}

// applyToTemplate fills identifiers the template configuration leaves empty.
func (s settings) applyToTemplate(cfg *config.TemplateConfig) {
	if cfg.OrgIdentifier == "" {
		cfg.OrgIdentifier = s.OrgIdentifier
	}
	if cfg.ProjectIdentifier == "" {
		cfg.ProjectIdentifier = s.ProjectIdentifier
	}
}

// applyToPipeline fills identifiers the pipeline configuration leaves empty.
func (s settings) applyToPipeline(cfg *config.PipelineConfig) {
	if cfg.OrgIdentifier == "" {
		cfg.OrgIdentifier = s.OrgIdentifier
	}
	if cfg.ProjectIdentifier == "" {
		cfg.ProjectIdentifier = s.ProjectIdentifier
	}
}

// applyToEnvironment fills identifiers the environment configuration
// leaves empty.
func (s settings) applyToEnvironment(cfg *config.EnvironmentConfig) {
	if cfg.OrgIdentifier == "" {
		cfg.OrgIdentifier = s.OrgIdentifier
	}
	if cfg.ProjectIdentifier == "" {
		cfg.ProjectIdentifier = s.ProjectIdentifier
	}
}
