package build

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"pipeforge/internal/domain/config"
)

// UnsupportedTemplateTypeError is the panic value raised when template spec
// dispatch meets a declared template type no builder exists for. This is a
// defect in the code constructing the configuration, not a data-quality
// problem: it must propagate to the caller and is never downgraded to a
// validation outcome.
type UnsupportedTemplateTypeError struct {
	Type config.TemplateType
}

// Error returns the panic message.
func (e *UnsupportedTemplateTypeError) Error() string {
	return fmt.Sprintf("no spec builder for template type %q", e.Type)
}

// TemplateSpec dispatches over the declared template type and builds the
// matching spec body. Step, Stage, Pipeline, and StepGroup each have a
// dedicated builder; an empty body comes back as nil so the spec key is
// omitted rather than emitted as {}. Any other type (SecretManager
// included) panics with UnsupportedTemplateTypeError. A payload of the
// wrong variant contributes nothing to the body; schema validation owns
// reporting the mismatch.
func TemplateSpec(typ config.TemplateType, spec config.TemplateSpec) *yaml.Node {
	switch typ {
	case config.TemplateStep:
		step, _ := spec.(config.StepConfig)
		return stepTemplateSpec(step)
	case config.TemplateStage:
		stage, _ := spec.(config.StageConfig)
		return stageTemplateSpec(stage)
	case config.TemplatePipeline:
		body, _ := spec.(config.PipelineSpec)
		return nonEmpty(PipelineBody(body))
	case config.TemplateStepGroup:
		group, _ := spec.(config.StepGroupSpec)
		node := Mapping()
		Put(node, "steps", Steps(group.Steps))
		return nonEmpty(node)
	default:
		panic(&UnsupportedTemplateTypeError{Type: typ})
	}
}

// stepTemplateSpec builds a step template body: the step without its
// name/identifier, which the template itself carries.
func stepTemplateSpec(step config.StepConfig) *yaml.Node {
	node := Mapping()
	PutString(node, "type", step.Type)
	PutAny(node, "spec", step.Spec)
	PutString(node, "timeout", step.Timeout)
	Put(node, "when", When(step.When))
	Put(node, "failureStrategies", FailureStrategies(step.FailureStrategies))
	return nonEmpty(node)
}

// stageTemplateSpec builds a stage template body, analogous to
// stepTemplateSpec.
func stageTemplateSpec(stage config.StageConfig) *yaml.Node {
	node := Mapping()
	PutString(node, "type", stage.Type)
	PutString(node, "description", stage.Description)
	Put(node, "spec", StageSpec(stage.Spec))
	Put(node, "when", When(stage.When))
	Put(node, "failureStrategies", FailureStrategies(stage.FailureStrategies))
	Put(node, "variables", Variables(stage.Variables))
	return nonEmpty(node)
}

// PipelineBody builds the shared pipeline body used both by the pipeline
// generator and by pipeline templates.
func PipelineBody(spec config.PipelineSpec) *yaml.Node {
	node := Mapping()
	PutAny(node, "properties", spec.Properties)
	Put(node, "stages", Stages(spec.Stages))
	Put(node, "variables", Variables(spec.Variables))
	Put(node, "notificationRules", NotificationRules(spec.NotificationRules))
	return node
}

// nonEmpty returns the mapping, or nil when it holds no entries.
func nonEmpty(node *yaml.Node) *yaml.Node {
	if len(node.Content) == 0 {
		return nil
	}
	return node
}
