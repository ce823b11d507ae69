package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipeforge/internal/domain/config"
)

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeforge.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSettings_ReadsTOML(t *testing.T) {
	t.Parallel()

	path := writeSettingsFile(t, `
org_identifier = "acme"
project_identifier = "payments"
`)

	s, err := loadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, "acme", s.OrgIdentifier)
	assert.Equal(t, "payments", s.ProjectIdentifier)
}

func TestLoadSettings_UnknownKeysIgnored(t *testing.T) {
	t.Parallel()

	path := writeSettingsFile(t, `
org_identifier = "acme"
scope = "org"
`)

	s, err := loadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, "acme", s.OrgIdentifier)
}

func TestLoadSettings_MissingDefaultFile_EmptySettings(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	s, err := loadSettings("")

	require.NoError(t, err)
	assert.Equal(t, settings{}, s)
}

func TestLoadSettings_MissingExplicitFile_Errors(t *testing.T) {
	t.Parallel()

	_, err := loadSettings(filepath.Join(t.TempDir(), "nope.toml"))

	require.Error(t, err)
	var usageErr *usageError
	assert.ErrorAs(t, err, &usageErr)
}

func TestLoadSettings_InvalidTOML_Errors(t *testing.T) {
	t.Parallel()

	path := writeSettingsFile(t, "org_identifier = [broken")

	_, err := loadSettings(path)

	require.Error(t, err)
	var usageErr *usageError
	require.ErrorAs(t, err, &usageErr)
	assert.Contains(t, usageErr.Message, "not valid TOML")
}

func TestSettings_ApplyToTemplate_FillsOnlyEmptyFields(t *testing.T) {
	t.Parallel()

	s := settings{OrgIdentifier: "acme", ProjectIdentifier: "payments"}

	cfg := &config.TemplateConfig{OrgIdentifier: "other"}
	s.applyToTemplate(cfg)

	assert.Equal(t, "other", cfg.OrgIdentifier)
	assert.Equal(t, "payments", cfg.ProjectIdentifier)
}

func TestSettings_ApplyToTemplate_NeverTouchesScope(t *testing.T) {
	t.Parallel()

	s := settings{OrgIdentifier: "acme"}
	cfg := &config.TemplateConfig{Scope: config.ScopeAccount}

	s.applyToTemplate(cfg)

	assert.Equal(t, config.ScopeAccount, cfg.Scope)
}

func TestSettings_ApplyToPipeline(t *testing.T) {
	t.Parallel()

	s := settings{OrgIdentifier: "acme", ProjectIdentifier: "payments"}
	cfg := &config.PipelineConfig{}

	s.applyToPipeline(cfg)

	assert.Equal(t, "acme", cfg.OrgIdentifier)
	assert.Equal(t, "payments", cfg.ProjectIdentifier)
}

func TestSettings_ApplyToEnvironment(t *testing.T) {
	t.Parallel()

	s := settings{OrgIdentifier: "acme"}
	cfg := &config.EnvironmentConfig{ProjectIdentifier: "existing"}

	s.applyToEnvironment(cfg)

	assert.Equal(t, "acme", cfg.OrgIdentifier)
	assert.Equal(t, "existing", cfg.ProjectIdentifier)
}
