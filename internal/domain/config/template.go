package config

// TemplateType selects the shape of a template's spec payload.
type TemplateType string

// TemplateType constants.
const (
	TemplateStep          TemplateType = "Step"
	TemplateStage         TemplateType = "Stage"
	TemplatePipeline      TemplateType = "Pipeline"
	TemplateStepGroup     TemplateType = "StepGroup"
	TemplateSecretManager TemplateType = "SecretManager"
)

// IsValid reports whether the template type is one of the known values.
func (t TemplateType) IsValid() bool {
	switch t {
	case TemplateStep, TemplateStage, TemplatePipeline, TemplateStepGroup, TemplateSecretManager:
		return true
	default:
		return false
	}
}

// String returns the template type as a string.
func (t TemplateType) String() string {
	return string(t)
}

// TemplateSpec is the closed set of template spec payloads. Exactly one
// variant exists per TemplateType: StepConfig, StageConfig, PipelineSpec,
// StepGroupSpec, and SecretManagerSpec. The marker method keeps the set
// closed so every dispatch site can type-switch exhaustively.
type TemplateSpec interface {
	// Kind returns the template type this spec payload belongs to.
	Kind() TemplateType

	templateSpec()
}

// StepGroupSpec is the spec payload of a StepGroup template: an ordered
// group of steps reusable as a unit inside stage executions.
type StepGroupSpec struct {
	Steps []StepConfig
}

// Kind returns TemplateStepGroup.
func (StepGroupSpec) Kind() TemplateType { return TemplateStepGroup }

func (StepGroupSpec) templateSpec() {}

// SecretManagerSpec is the spec payload of a SecretManager template.
// Its shape is owned by the secret-manager integration, so it is carried
// opaquely; schema validation falls back to the base template schema.
type SecretManagerSpec struct {
	Raw map[string]any
}

// Kind returns TemplateSecretManager.
func (SecretManagerSpec) Kind() TemplateType { return TemplateSecretManager }

func (SecretManagerSpec) templateSpec() {}

// TemplateConfig describes a reusable template artifact.
type TemplateConfig struct {
	Name              string
	Identifier        string // derived from Name when empty
	Type              TemplateType
	Scope             Scope
	VersionLabel      string
	OrgIdentifier     string
	ProjectIdentifier string
	Description       string
	Tags              map[string]string
	Spec              TemplateSpec
}
