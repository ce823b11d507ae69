package build

import (
	"gopkg.in/yaml.v3"

	"pipeforge/internal/domain/config"
)

// When builds a when condition mapping, or nil when absent.
func When(w *config.WhenCondition) *yaml.Node {
	if w == nil {
		return nil
	}
	node := Mapping()
	PutString(node, "pipelineStatus", w.PipelineStatus)
	PutString(node, "stageStatus", w.StageStatus)
	PutString(node, "condition", w.Condition)
	return node
}

// Variables builds the variables sequence, or nil when the list is empty.
func Variables(vars []config.Variable) *yaml.Node {
	if len(vars) == 0 {
		return nil
	}
	items := make([]*yaml.Node, 0, len(vars))
	for _, v := range vars {
		entry := Mapping()
		PutString(entry, "name", v.Name)
		PutString(entry, "type", v.Type)
		PutString(entry, "description", v.Description)
		PutAny(entry, "value", v.Value)
		PutAny(entry, "default", v.Default)
		if v.Required {
			PutBool(entry, "required", true)
		}
		items = append(items, entry)
	}
	return Sequence(items...)
}

// NotificationRules builds the notificationRules sequence, or nil when the
// list is empty. The enabled flag defaults to true when unset.
func NotificationRules(rules []config.NotificationRule) *yaml.Node {
	if len(rules) == 0 {
		return nil
	}
	items := make([]*yaml.Node, 0, len(rules))
	for _, r := range rules {
		enabled := true
		if r.Enabled != nil {
			enabled = *r.Enabled
		}
		method := Mapping()
		PutString(method, "type", r.Method.Type)
		PutAny(method, "spec", r.Method.Spec)

		entry := Mapping()
		PutString(entry, "name", r.Name)
		PutBool(entry, "enabled", enabled)
		Put(entry, "events", StringSequence(r.Events))
		Put(entry, "notificationMethod", method)
		items = append(items, entry)
	}
	return Sequence(items...)
}

// Step builds a full step mapping.
func Step(step config.StepConfig) *yaml.Node {
	node := Mapping()
	PutString(node, "type", step.Type)
	PutString(node, "name", step.Name)
	PutString(node, "identifier", Identifier(step.Name, step.Identifier))
	PutAny(node, "spec", step.Spec)
	PutString(node, "timeout", step.Timeout)
	Put(node, "when", When(step.When))
	Put(node, "failureStrategies", FailureStrategies(step.FailureStrategies))
	return node
}

// Steps builds a sequence of "- step:" entries, or nil when empty.
func Steps(steps []config.StepConfig) *yaml.Node {
	if len(steps) == 0 {
		return nil
	}
	items := make([]*yaml.Node, 0, len(steps))
	for _, s := range steps {
		entry := Mapping()
		Put(entry, "step", Step(s))
		items = append(items, entry)
	}
	return Sequence(items...)
}

// StageSpec builds the type-dependent stage body. Every populated field
// passes through regardless of the stage type; the schema validator owns
// type-correctness, the builder stays permissive.
func StageSpec(spec *config.StageSpec) *yaml.Node {
	if spec == nil {
		return nil
	}
	node := Mapping()
	if spec.CloneCodebase != nil {
		PutBool(node, "cloneCodebase", *spec.CloneCodebase)
	}
	PutAny(node, "infrastructure", spec.Infrastructure)
	PutAny(node, "serviceConfig", spec.ServiceConfig)
	PutAny(node, "environment", spec.Environment)
	PutString(node, "deploymentType", spec.DeploymentType)
	if spec.Execution != nil {
		execution := Mapping()
		Put(execution, "steps", Steps(spec.Execution.Steps))
		Put(execution, "rollbackSteps", Steps(spec.Execution.RollbackSteps))
		if len(execution.Content) > 0 {
			Put(node, "execution", execution)
		}
	}
	if len(node.Content) == 0 {
		return nil
	}
	return node
}

// Stage builds a full stage mapping.
func Stage(stage config.StageConfig) *yaml.Node {
	node := Mapping()
	PutString(node, "name", stage.Name)
	PutString(node, "identifier", Identifier(stage.Name, stage.Identifier))
	PutString(node, "description", stage.Description)
	PutString(node, "type", stage.Type)
	Put(node, "spec", StageSpec(stage.Spec))
	Put(node, "when", When(stage.When))
	Put(node, "failureStrategies", FailureStrategies(stage.FailureStrategies))
	Put(node, "variables", Variables(stage.Variables))
	PutStringMap(node, "tags", stage.Tags)
	return node
}

// Stages builds a sequence of "- stage:" entries, or nil when empty.
func Stages(stages []config.StageConfig) *yaml.Node {
	if len(stages) == 0 {
		return nil
	}
	items := make([]*yaml.Node, 0, len(stages))
	for _, s := range stages {
		entry := Mapping()
		Put(entry, "stage", Stage(s))
		items = append(items, entry)
	}
	return Sequence(items...)
}
