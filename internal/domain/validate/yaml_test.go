package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipeforge/internal/domain/template"
	"pipeforge/internal/domain/validate"
)

func TestValidateYAML_InvalidYAML_SingleParseError(t *testing.T) {
	t.Parallel()

	result := validate.ValidateYAML("template: [unclosed")

	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, validate.RuleParse, result.Errors[0].Rule)
	assert.Contains(t, result.Errors[0].Message, "not valid YAML")
}

func TestValidateYAML_MissingTemplateKey_SingleError(t *testing.T) {
	t.Parallel()

	result := validate.ValidateYAML("pipeline:\n  name: CI\n")

	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, validate.RuleParse, result.Errors[0].Rule)
	assert.Contains(t, result.Errors[0].Message, "template")
}

func TestValidateYAML_ValidDocument_DelegatesToConfigValidation(t *testing.T) {
	t.Parallel()

	text := `template:
  name: Run Script
  type: Step
  versionLabel: v1.0.0
  orgIdentifier: acme
  projectIdentifier: payments
  description: Runs a shell script
  tags:
    team: ci
  spec:
    type: ShellScript
`

	result := validate.ValidateYAML(text)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateYAML_SchemaViolationsSurface(t *testing.T) {
	t.Parallel()

	// Parses fine but has no name and no versionLabel.
	text := `template:
  type: Step
  spec:
    type: ShellScript
`

	result := validate.ValidateYAML(text)

	require.False(t, result.Valid)
	fields := make([]string, 0, len(result.Errors))
	for _, issue := range result.Errors {
		fields = append(fields, issue.Field)
	}
	assert.ElementsMatch(t, []string{"name", "versionLabel"}, fields)
}

func TestValidateYAML_GeneratedTemplate_RoundTripsValid(t *testing.T) {
	t.Parallel()

	manager := template.NewManager(nil)
	text := manager.Generate(validStepTemplate())

	result := validate.ValidateYAML(text)

	assert.True(t, result.Valid, "generated artifact should validate clean:\n%s", text)
	assert.Empty(t, result.Errors)
}
