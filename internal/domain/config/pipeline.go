package config

// Variable is a named value attached to a pipeline, stage, or environment.
type Variable struct {
	Name        string
	Type        string // String, Number, Secret
	Description string
	Value       any
	Default     any
	Required    bool
}

// NotificationMethod is the typed delivery channel of a notification rule.
type NotificationMethod struct {
	Type string // Slack, Email, PagerDuty, Webhook
	Spec map[string]any
}

// NotificationRule routes a set of pipeline events to a notification method.
// Enabled defaults to true when unset.
type NotificationRule struct {
	Name    string
	Enabled *bool
	Events  []string
	Method  NotificationMethod
}

// WhenCondition gates execution of a stage or step.
type WhenCondition struct {
	PipelineStatus string
	StageStatus    string
	Condition      string
}

// StepConfig describes a single step. Spec is opaque: its keys are owned
// by the step type's integration and pass through generation untouched.
type StepConfig struct {
	Type              string
	Name              string
	Identifier        string
	Spec              map[string]any
	Timeout           string
	When              *WhenCondition
	FailureStrategies []FailureStrategy
}

// Kind returns TemplateStep.
func (StepConfig) Kind() TemplateType { return TemplateStep }

func (StepConfig) templateSpec() {}

// Execution holds the ordered steps of a stage, plus optional rollback steps.
type Execution struct {
	Steps         []StepConfig
	RollbackSteps []StepConfig
}

// StageSpec is the type-dependent body of a stage. Which fields are
// meaningful depends on the stage type (cloneCodebase for build stages,
// serviceConfig/environment/deploymentType for deployment stages), but the
// model does not gate the combination: correctness is the validator's job.
type StageSpec struct {
	CloneCodebase  *bool
	Infrastructure map[string]any
	ServiceConfig  map[string]any
	Environment    map[string]any
	DeploymentType string
	Execution      *Execution
}

// StageConfig describes a single pipeline stage.
type StageConfig struct {
	Name              string
	Identifier        string
	Description       string
	Type              string // Deployment, CI, Approval, Custom
	Spec              *StageSpec
	When              *WhenCondition
	FailureStrategies []FailureStrategy
	Variables         []Variable
	Tags              map[string]string
}

// Kind returns TemplateStage.
func (StageConfig) Kind() TemplateType { return TemplateStage }

func (StageConfig) templateSpec() {}

// PipelineSpec is the spec payload of a Pipeline template.
type PipelineSpec struct {
	Stages            []StageConfig
	Variables         []Variable
	Properties        map[string]any
	NotificationRules []NotificationRule
}

// Kind returns TemplatePipeline.
func (PipelineSpec) Kind() TemplateType { return TemplatePipeline }

func (PipelineSpec) templateSpec() {}

// PipelineConfig describes a full pipeline artifact.
type PipelineConfig struct {
	Name              string
	Identifier        string
	Description       string
	Tags              map[string]string
	OrgIdentifier     string
	ProjectIdentifier string
	Properties        map[string]any
	Stages            []StageConfig
	Variables         []Variable
	NotificationRules []NotificationRule
}
