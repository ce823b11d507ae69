package template_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipeforge/internal/domain/build"
	"pipeforge/internal/domain/config"
	"pipeforge/internal/domain/template"
	"pipeforge/internal/domain/validate"
)

func stepTemplate() config.TemplateConfig {
	return config.TemplateConfig{
		Name:              "Run Script",
		Type:              config.TemplateStep,
		Scope:             config.ScopeProject,
		VersionLabel:      "v1.0.0",
		OrgIdentifier:     "acme",
		ProjectIdentifier: "payments",
		Spec: config.StepConfig{
			Type:    "ShellScript",
			Timeout: "10m",
			Spec:    map[string]any{"shell": "Bash", "command": "./build.sh"},
		},
	}
}

func TestManager_Generate_StepTemplate(t *testing.T) {
	t.Parallel()

	out := template.NewManager(nil).Generate(stepTemplate())

	assert.True(t, strings.HasPrefix(out, "template:\n"))
	assert.Contains(t, out, "name: Run Script")
	assert.Contains(t, out, "identifier: run_script")
	assert.Contains(t, out, "versionLabel: v1.0.0")
	assert.Contains(t, out, "type: Step")
	assert.Contains(t, out, "type: ShellScript")
	assert.Contains(t, out, "timeout: 10m")
}

func TestManager_Generate_StageTemplate(t *testing.T) {
	t.Parallel()

	cfg := config.TemplateConfig{
		Name:         "Approval Gate",
		Type:         config.TemplateStage,
		Scope:        config.ScopeAccount,
		VersionLabel: "v1",
		Spec: config.StageConfig{
			Type: "Approval",
			Spec: &config.StageSpec{
				Execution: &config.Execution{
					Steps: []config.StepConfig{{Type: "HarnessApproval", Name: "Approve"}},
				},
			},
		},
	}

	out := template.NewManager(nil).Generate(cfg)
	assert.Contains(t, out, "type: Stage")
	assert.Contains(t, out, "type: Approval")
	assert.Contains(t, out, "- step:")
}

func TestManager_Generate_PipelineTemplate(t *testing.T) {
	t.Parallel()

	cfg := config.TemplateConfig{
		Name:          "Nightly",
		Type:          config.TemplatePipeline,
		Scope:         config.ScopeOrg,
		VersionLabel:  "v2",
		OrgIdentifier: "acme",
		Spec: config.PipelineSpec{
			Stages: []config.StageConfig{{Name: "Build", Type: "CI"}},
		},
	}

	out := template.NewManager(nil).Generate(cfg)
	assert.Contains(t, out, "type: Pipeline")
	assert.Contains(t, out, "- stage:")
	assert.Contains(t, out, "name: Build")
}

func TestManager_Generate_StepGroupTemplate(t *testing.T) {
	t.Parallel()

	cfg := config.TemplateConfig{
		Name:         "Security Scan",
		Type:         config.TemplateStepGroup,
		Scope:        config.ScopeAccount,
		VersionLabel: "v1",
		Spec: config.StepGroupSpec{
			Steps: []config.StepConfig{
				{Type: "Run", Name: "Dependency Scan"},
				{Type: "Run", Name: "Image Scan"},
			},
		},
	}

	out := template.NewManager(nil).Generate(cfg)
	assert.Contains(t, out, "type: StepGroup")
	assert.Contains(t, out, "identifier: dependency_scan")
	assert.Contains(t, out, "identifier: image_scan")
}

func TestManager_Generate_SecretManagerSpec_Panics(t *testing.T) {
	t.Parallel()

	cfg := config.TemplateConfig{
		Name:         "Vault",
		Type:         config.TemplateSecretManager,
		Scope:        config.ScopeAccount,
		VersionLabel: "v1",
		Spec:         config.SecretManagerSpec{Raw: map[string]any{"shell": "Bash"}},
	}

	manager := template.NewManager(nil)
	require.PanicsWithError(t, `no spec builder for template type "SecretManager"`, func() {
		manager.Generate(cfg)
	})
}

func TestManager_Generate_UnknownType_Panics(t *testing.T) {
	t.Parallel()

	cfg := stepTemplate()
	cfg.Type = config.TemplateType("Widget")

	manager := template.NewManager(nil)
	defer func() {
		recovered := recover()
		require.NotNil(t, recovered)
		_, ok := recovered.(*build.UnsupportedTemplateTypeError)
		assert.True(t, ok)
	}()
	manager.Generate(cfg)
}

func TestManager_Generate_StepGroupWithoutSpec_OmitsSpecKey(t *testing.T) {
	t.Parallel()

	cfg := config.TemplateConfig{
		Name:         "Security Scan",
		Type:         config.TemplateStepGroup,
		Scope:        config.ScopeAccount,
		VersionLabel: "v1",
	}

	manager := template.NewManager(nil)
	out := manager.Generate(cfg)
	assert.Contains(t, out, "type: StepGroup")
	assert.NotContains(t, out, "spec")
	assert.NotContains(t, out, "{}")

	// An empty payload behaves like an absent one.
	cfg.Spec = config.StepGroupSpec{}
	out = manager.Generate(cfg)
	assert.NotContains(t, out, "spec")
	assert.NotContains(t, out, "{}")
}

func TestManager_Generate_NilSpec_SupportedTypes_DoNotPanic(t *testing.T) {
	t.Parallel()

	manager := template.NewManager(nil)
	for _, typ := range []config.TemplateType{
		config.TemplateStep,
		config.TemplateStage,
		config.TemplatePipeline,
		config.TemplateStepGroup,
	} {
		cfg := stepTemplate()
		cfg.Type = typ
		cfg.Spec = nil

		out := manager.Generate(cfg)
		assert.Contains(t, out, "type: "+typ.String())
		assert.NotContains(t, out, "spec")
		assert.NotContains(t, out, "null")
	}
}

func TestManager_Generate_ValidatedStepGroupWithoutSpec_Succeeds(t *testing.T) {
	t.Parallel()

	cfg := config.TemplateConfig{
		Name:         "Security Scan",
		Type:         config.TemplateStepGroup,
		Scope:        config.ScopeAccount,
		VersionLabel: "v1",
	}

	result := validate.ValidateTemplateConfig(cfg)
	require.True(t, result.Valid)

	manager := template.NewManager(nil)
	assert.NotPanics(t, func() { manager.Generate(cfg) })
}

func TestManager_Generate_NoTagsNoDescription_KeysAbsent(t *testing.T) {
	t.Parallel()

	out := template.NewManager(nil).Generate(stepTemplate())

	assert.NotContains(t, out, "description")
	assert.NotContains(t, out, "tags")
	assert.NotContains(t, out, "null")
	assert.NotContains(t, out, "{}")
}

func TestManager_Generate_Twice_ByteIdentical(t *testing.T) {
	t.Parallel()

	cfg := stepTemplate()
	cfg.Tags = map[string]string{"team": "ci", "app": "web", "tier": "build"}

	manager := template.NewManager(nil)
	assert.Equal(t, manager.Generate(cfg), manager.Generate(cfg))
}

func TestManager_Generate_RetryChain_SurvivesRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := stepTemplate()
	step := cfg.Spec.(config.StepConfig)
	step.FailureStrategies = []config.FailureStrategy{{
		OnFailure: config.OnFailure{
			Errors: []string{"Timeout"},
			Action: config.FailureAction{
				Type: "Retry",
				Spec: &config.ActionSpec{
					RetryCount: 2,
					OnRetryFailure: &config.FailureStrategy{
						OnFailure: config.OnFailure{
							Errors: []string{"AllErrors"},
							Action: config.FailureAction{
								Type: "Retry",
								Spec: &config.ActionSpec{
									RetryCount: 1,
									OnRetryFailure: &config.FailureStrategy{
										OnFailure: config.OnFailure{
											Errors: []string{"AllErrors"},
											Action: config.FailureAction{Type: "Abort"},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}}
	cfg.Spec = step

	out := template.NewManager(nil).Generate(cfg)

	parsed, err := config.ParseTemplate([]byte(out))
	require.NoError(t, err)
	parsedStep, ok := parsed.Spec.(config.StepConfig)
	require.True(t, ok)
	require.Len(t, parsedStep.FailureStrategies, 1)

	level1 := parsedStep.FailureStrategies[0]
	require.NotNil(t, level1.OnFailure.Action.Spec)
	level2 := level1.OnFailure.Action.Spec.OnRetryFailure
	require.NotNil(t, level2)
	require.NotNil(t, level2.OnFailure.Action.Spec)
	level3 := level2.OnFailure.Action.Spec.OnRetryFailure
	require.NotNil(t, level3)
	assert.Equal(t, "Abort", level3.OnFailure.Action.Type)
}
