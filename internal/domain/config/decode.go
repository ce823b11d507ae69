package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Errors for document parsing.
var (
	ErrNoTemplateKey    = errors.New("document has no top-level template key")
	ErrNoPipelineKey    = errors.New("document has no top-level pipeline key")
	ErrNoEnvironmentKey = errors.New("document has no top-level environment key")
)

// variableDTO mirrors the emitted variable shape.
type variableDTO struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description,omitempty"`
	Value       any    `yaml:"value,omitempty"`
	Default     any    `yaml:"default,omitempty"`
	Required    bool   `yaml:"required,omitempty"`
}

func (d variableDTO) toVariable() Variable {
	return Variable{
		Name:        d.Name,
		Type:        d.Type,
		Description: d.Description,
		Value:       d.Value,
		Default:     d.Default,
		Required:    d.Required,
	}
}

func toVariables(dtos []variableDTO) []Variable {
	if len(dtos) == 0 {
		return nil
	}
	vars := make([]Variable, 0, len(dtos))
	for _, d := range dtos {
		vars = append(vars, d.toVariable())
	}
	return vars
}

type whenDTO struct {
	PipelineStatus string `yaml:"pipelineStatus,omitempty"`
	StageStatus    string `yaml:"stageStatus,omitempty"`
	Condition      string `yaml:"condition,omitempty"`
}

func (d *whenDTO) toWhen() *WhenCondition {
	if d == nil {
		return nil
	}
	return &WhenCondition{
		PipelineStatus: d.PipelineStatus,
		StageStatus:    d.StageStatus,
		Condition:      d.Condition,
	}
}

type failureStrategyDTO struct {
	OnFailure struct {
		Errors []string `yaml:"errors"`
		Action struct {
			Type string `yaml:"type"`
			Spec *struct {
				RetryCount     int                 `yaml:"retryCount,omitempty"`
				RetryIntervals []string            `yaml:"retryIntervals,omitempty"`
				OnRetryFailure *failureStrategyDTO `yaml:"onRetryFailure,omitempty"`
			} `yaml:"spec,omitempty"`
		} `yaml:"action"`
	} `yaml:"onFailure"`
}

func (d failureStrategyDTO) toStrategy() FailureStrategy {
	fs := FailureStrategy{
		OnFailure: OnFailure{
			Errors: d.OnFailure.Errors,
			Action: FailureAction{Type: d.OnFailure.Action.Type},
		},
	}
	if spec := d.OnFailure.Action.Spec; spec != nil {
		as := &ActionSpec{
			RetryCount:     spec.RetryCount,
			RetryIntervals: spec.RetryIntervals,
		}
		if spec.OnRetryFailure != nil {
			inner := spec.OnRetryFailure.toStrategy()
			as.OnRetryFailure = &inner
		}
		fs.OnFailure.Action.Spec = as
	}
	return fs
}

func toStrategies(dtos []failureStrategyDTO) []FailureStrategy {
	if len(dtos) == 0 {
		return nil
	}
	out := make([]FailureStrategy, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toStrategy())
	}
	return out
}

type stepDTO struct {
	Type              string               `yaml:"type"`
	Name              string               `yaml:"name"`
	Identifier        string               `yaml:"identifier,omitempty"`
	Spec              map[string]any       `yaml:"spec,omitempty"`
	Timeout           string               `yaml:"timeout,omitempty"`
	When              *whenDTO             `yaml:"when,omitempty"`
	FailureStrategies []failureStrategyDTO `yaml:"failureStrategies,omitempty"`
}

func (d stepDTO) toStep() StepConfig {
	return StepConfig{
		Type:              d.Type,
		Name:              d.Name,
		Identifier:        d.Identifier,
		Spec:              d.Spec,
		Timeout:           d.Timeout,
		When:              d.When.toWhen(),
		FailureStrategies: toStrategies(d.FailureStrategies),
	}
}

// wrappedStepDTO matches the emitted "- step:" list entry form while still
// accepting bare step mappings.
type wrappedStepDTO struct {
	Step *stepDTO `yaml:"step"`
	stepDTO
}

func toSteps(dtos []wrappedStepDTO) []StepConfig {
	if len(dtos) == 0 {
		return nil
	}
	steps := make([]StepConfig, 0, len(dtos))
	for _, d := range dtos {
		if d.Step != nil {
			steps = append(steps, d.Step.toStep())
			continue
		}
		steps = append(steps, d.stepDTO.toStep())
	}
	return steps
}

type executionDTO struct {
	Steps         []wrappedStepDTO `yaml:"steps"`
	RollbackSteps []wrappedStepDTO `yaml:"rollbackSteps,omitempty"`
}

type stageSpecDTO struct {
	CloneCodebase  *bool          `yaml:"cloneCodebase,omitempty"`
	Infrastructure map[string]any `yaml:"infrastructure,omitempty"`
	ServiceConfig  map[string]any `yaml:"serviceConfig,omitempty"`
	Environment    map[string]any `yaml:"environment,omitempty"`
	DeploymentType string         `yaml:"deploymentType,omitempty"`
	Execution      *executionDTO  `yaml:"execution,omitempty"`
}

func (d *stageSpecDTO) toSpec() *StageSpec {
	if d == nil {
		return nil
	}
	spec := &StageSpec{
		CloneCodebase:  d.CloneCodebase,
		Infrastructure: d.Infrastructure,
		ServiceConfig:  d.ServiceConfig,
		Environment:    d.Environment,
		DeploymentType: d.DeploymentType,
	}
	if d.Execution != nil {
		spec.Execution = &Execution{
			Steps:         toSteps(d.Execution.Steps),
			RollbackSteps: toSteps(d.Execution.RollbackSteps),
		}
	}
	return spec
}

type stageDTO struct {
	Name              string               `yaml:"name"`
	Identifier        string               `yaml:"identifier,omitempty"`
	Description       string               `yaml:"description,omitempty"`
	Type              string               `yaml:"type"`
	Spec              *stageSpecDTO        `yaml:"spec,omitempty"`
	When              *whenDTO             `yaml:"when,omitempty"`
	FailureStrategies []failureStrategyDTO `yaml:"failureStrategies,omitempty"`
	Variables         []variableDTO        `yaml:"variables,omitempty"`
	Tags              map[string]string    `yaml:"tags,omitempty"`
}

func (d stageDTO) toStage() StageConfig {
	return StageConfig{
		Name:              d.Name,
		Identifier:        d.Identifier,
		Description:       d.Description,
		Type:              d.Type,
		Spec:              d.Spec.toSpec(),
		When:              d.When.toWhen(),
		FailureStrategies: toStrategies(d.FailureStrategies),
		Variables:         toVariables(d.Variables),
		Tags:              d.Tags,
	}
}

type wrappedStageDTO struct {
	Stage *stageDTO `yaml:"stage"`
	stageDTO
}

func toStages(dtos []wrappedStageDTO) []StageConfig {
	if len(dtos) == 0 {
		return nil
	}
	stages := make([]StageConfig, 0, len(dtos))
	for _, d := range dtos {
		if d.Stage != nil {
			stages = append(stages, d.Stage.toStage())
			continue
		}
		stages = append(stages, d.stageDTO.toStage())
	}
	return stages
}

type notificationRuleDTO struct {
	Name    string   `yaml:"name"`
	Enabled *bool    `yaml:"enabled,omitempty"`
	Events  []string `yaml:"events,omitempty"`
	Method  struct {
		Type string         `yaml:"type"`
		Spec map[string]any `yaml:"spec,omitempty"`
	} `yaml:"notificationMethod"`
}

func toNotificationRules(dtos []notificationRuleDTO) []NotificationRule {
	if len(dtos) == 0 {
		return nil
	}
	rules := make([]NotificationRule, 0, len(dtos))
	for _, d := range dtos {
		rules = append(rules, NotificationRule{
			Name:    d.Name,
			Enabled: d.Enabled,
			Events:  d.Events,
			Method:  NotificationMethod{Type: d.Method.Type, Spec: d.Method.Spec},
		})
	}
	return rules
}

type pipelineBodyDTO struct {
	Name              string                `yaml:"name"`
	Identifier        string                `yaml:"identifier,omitempty"`
	Description       string                `yaml:"description,omitempty"`
	Tags              map[string]string     `yaml:"tags,omitempty"`
	OrgIdentifier     string                `yaml:"orgIdentifier,omitempty"`
	ProjectIdentifier string                `yaml:"projectIdentifier,omitempty"`
	Properties        map[string]any        `yaml:"properties,omitempty"`
	Stages            []wrappedStageDTO     `yaml:"stages,omitempty"`
	Variables         []variableDTO         `yaml:"variables,omitempty"`
	NotificationRules []notificationRuleDTO `yaml:"notificationRules,omitempty"`
}

type templateDTO struct {
	Name              string            `yaml:"name"`
	Identifier        string            `yaml:"identifier,omitempty"`
	VersionLabel      string            `yaml:"versionLabel"`
	Type              string            `yaml:"type"`
	Scope             string            `yaml:"scope,omitempty"`
	Description       string            `yaml:"description,omitempty"`
	Tags              map[string]string `yaml:"tags,omitempty"`
	OrgIdentifier     string            `yaml:"orgIdentifier,omitempty"`
	ProjectIdentifier string            `yaml:"projectIdentifier,omitempty"`
	Spec              yaml.Node         `yaml:"spec"`
}

// ParseTemplate decodes a template document (top-level "template" key) into
// a TemplateConfig. The spec payload variant is selected by the declared
// type; an unknown type leaves Spec nil so schema validation can report it.
func ParseTemplate(data []byte) (*TemplateConfig, error) {
	var doc struct {
		Template *templateDTO `yaml:"template"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse template document: %w", err)
	}
	if doc.Template == nil {
		return nil, ErrNoTemplateKey
	}
	dto := doc.Template

	cfg := &TemplateConfig{
		Name:              dto.Name,
		Identifier:        dto.Identifier,
		Type:              TemplateType(dto.Type),
		VersionLabel:      dto.VersionLabel,
		OrgIdentifier:     dto.OrgIdentifier,
		ProjectIdentifier: dto.ProjectIdentifier,
		Description:       dto.Description,
		Tags:              dto.Tags,
	}

	if dto.Scope != "" {
		cfg.Scope = Scope(dto.Scope)
	} else {
		cfg.Scope = inferScope(dto.OrgIdentifier, dto.ProjectIdentifier)
	}

	spec, err := decodeTemplateSpec(cfg.Type, &dto.Spec)
	if err != nil {
		return nil, err
	}
	cfg.Spec = spec
	return cfg, nil
}

// inferScope recovers the scope of a parsed template from the identifiers
// present, since generated artifacts do not carry an explicit scope field.
func inferScope(orgID, projectID string) Scope {
	switch {
	case projectID != "":
		return ScopeProject
	case orgID != "":
		return ScopeOrg
	default:
		return ScopeAccount
	}
}

func decodeTemplateSpec(typ TemplateType, node *yaml.Node) (TemplateSpec, error) {
	if node.Kind == 0 || node.Tag == "!!null" {
		return nil, nil
	}
	switch typ {
	case TemplateStep:
		var dto stepDTO
		if err := node.Decode(&dto); err != nil {
			return nil, fmt.Errorf("decode step spec: %w", err)
		}
		return dto.toStep(), nil
	case TemplateStage:
		var dto stageDTO
		if err := node.Decode(&dto); err != nil {
			return nil, fmt.Errorf("decode stage spec: %w", err)
		}
		return dto.toStage(), nil
	case TemplatePipeline:
		var dto pipelineBodyDTO
		if err := node.Decode(&dto); err != nil {
			return nil, fmt.Errorf("decode pipeline spec: %w", err)
		}
		return PipelineSpec{
			Stages:            toStages(dto.Stages),
			Variables:         toVariables(dto.Variables),
			Properties:        dto.Properties,
			NotificationRules: toNotificationRules(dto.NotificationRules),
		}, nil
	case TemplateStepGroup:
		var dto struct {
			Steps []wrappedStepDTO `yaml:"steps"`
		}
		if err := node.Decode(&dto); err != nil {
			return nil, fmt.Errorf("decode step group spec: %w", err)
		}
		return StepGroupSpec{Steps: toSteps(dto.Steps)}, nil
	case TemplateSecretManager:
		var raw map[string]any
		if err := node.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode secret manager spec: %w", err)
		}
		return SecretManagerSpec{Raw: raw}, nil
	default:
		// Unknown type: leave the spec untyped, validation reports the enum
		// violation.
		return nil, nil
	}
}

// ParsePipeline decodes a pipeline document (top-level "pipeline" key).
func ParsePipeline(data []byte) (*PipelineConfig, error) {
	var doc struct {
		Pipeline *pipelineBodyDTO `yaml:"pipeline"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse pipeline document: %w", err)
	}
	if doc.Pipeline == nil {
		return nil, ErrNoPipelineKey
	}
	dto := doc.Pipeline
	return &PipelineConfig{
		Name:              dto.Name,
		Identifier:        dto.Identifier,
		Description:       dto.Description,
		Tags:              dto.Tags,
		OrgIdentifier:     dto.OrgIdentifier,
		ProjectIdentifier: dto.ProjectIdentifier,
		Properties:        dto.Properties,
		Stages:            toStages(dto.Stages),
		Variables:         toVariables(dto.Variables),
		NotificationRules: toNotificationRules(dto.NotificationRules),
	}, nil
}

type overridesDTO struct {
	Manifests []struct {
		Manifest struct {
			Identifier string `yaml:"identifier"`
			Type       string `yaml:"type"`
			Path       string `yaml:"path,omitempty"`
		} `yaml:"manifest"`
	} `yaml:"manifests,omitempty"`
	ConfigFiles []struct {
		ConfigFile struct {
			Identifier string   `yaml:"identifier"`
			Paths      []string `yaml:"paths,omitempty"`
		} `yaml:"configFile"`
	} `yaml:"configFiles,omitempty"`
	Variables []variableDTO `yaml:"variables,omitempty"`
}

// ParseEnvironment decodes an environment document (top-level "environment" key).
func ParseEnvironment(data []byte) (*EnvironmentConfig, error) {
	var doc struct {
		Environment *struct {
			Name              string            `yaml:"name"`
			Identifier        string            `yaml:"identifier,omitempty"`
			Description       string            `yaml:"description,omitempty"`
			Tags              map[string]string `yaml:"tags,omitempty"`
			Type              string            `yaml:"type"`
			OrgIdentifier     string            `yaml:"orgIdentifier,omitempty"`
			ProjectIdentifier string            `yaml:"projectIdentifier,omitempty"`
			Variables         []variableDTO     `yaml:"variables,omitempty"`
			Overrides         *overridesDTO     `yaml:"overrides,omitempty"`
		} `yaml:"environment"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse environment document: %w", err)
	}
	if doc.Environment == nil {
		return nil, ErrNoEnvironmentKey
	}
	dto := doc.Environment

	cfg := &EnvironmentConfig{
		Name:              dto.Name,
		Identifier:        dto.Identifier,
		OrgIdentifier:     dto.OrgIdentifier,
		ProjectIdentifier: dto.ProjectIdentifier,
		Type:              EnvironmentType(dto.Type),
		Description:       dto.Description,
		Tags:              dto.Tags,
		Variables:         toVariables(dto.Variables),
	}
	if dto.Overrides != nil {
		ov := &Overrides{Variables: toVariables(dto.Overrides.Variables)}
		for _, m := range dto.Overrides.Manifests {
			ov.Manifests = append(ov.Manifests, ManifestOverride{
				Identifier: m.Manifest.Identifier,
				Type:       m.Manifest.Type,
				Path:       m.Manifest.Path,
			})
		}
		for _, f := range dto.Overrides.ConfigFiles {
			ov.ConfigFiles = append(ov.ConfigFiles, ConfigFileOverride{
				Identifier: f.ConfigFile.Identifier,
				Paths:      f.ConfigFile.Paths,
			})
		}
		cfg.Overrides = ov
	}
	return cfg, nil
}
