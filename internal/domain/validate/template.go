package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"pipeforge/internal/domain/config"
)

const maxNameLength = 128

var (
	// identifierPattern is the canonical machine-name constraint shared by
	// identifiers and template references.
	identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

	// versionLabelPattern is the semantic-version-like constraint on
	// template version labels: optional v, dotted digits, optional
	// alphanumeric pre-release suffix.
	versionLabelPattern = regexp.MustCompile(`^v?\d+(\.\d+)*(-[a-zA-Z0-9]+)?$`)
)

// ValidateTemplateConfig checks a template configuration in four stages:
// base shape, scope requirements, type-specific spec schema, and
// best-practice warnings. A base-shape failure returns immediately with
// only the base errors; the later stages accumulate every violation they
// find before returning.
func ValidateTemplateConfig(cfg config.TemplateConfig) Result {
	if errs := baseIssues(cfg); len(errs) > 0 {
		return invalid(errs...)
	}

	var errs []Issue
	errs = append(errs, scopeIssues(cfg)...)
	errs = append(errs, specIssues(cfg)...)

	return resultOf(errs, bestPracticeWarnings(cfg))
}

// baseIssues checks the shape every template shares regardless of type.
func baseIssues(cfg config.TemplateConfig) []Issue {
	var errs []Issue

	switch {
	case cfg.Name == "":
		errs = append(errs, Issue{Field: "name", Rule: RuleRequired, Message: "name is required"})
	case len(cfg.Name) > maxNameLength:
		errs = append(errs, Issue{
			Field:   "name",
			Rule:    RuleLength,
			Message: fmt.Sprintf("name exceeds %d characters", maxNameLength),
		})
	}

	if cfg.Identifier != "" && !identifierPattern.MatchString(cfg.Identifier) {
		errs = append(errs, Issue{
			Field:   "identifier",
			Rule:    RulePattern,
			Message: fmt.Sprintf("identifier %q must match %s", cfg.Identifier, identifierPattern),
		})
	}

	if !cfg.Type.IsValid() {
		errs = append(errs, Issue{
			Field:   "type",
			Rule:    RuleEnum,
			Message: fmt.Sprintf("unknown template type %q", cfg.Type),
		})
	}

	if !cfg.Scope.IsValid() {
		errs = append(errs, Issue{
			Field:   "scope",
			Rule:    RuleEnum,
			Message: fmt.Sprintf("unknown scope %q", cfg.Scope),
		})
	}

	switch {
	case cfg.VersionLabel == "":
		errs = append(errs, Issue{Field: "versionLabel", Rule: RuleRequired, Message: "versionLabel is required"})
	case !versionLabelPattern.MatchString(cfg.VersionLabel):
		errs = append(errs, Issue{
			Field:   "versionLabel",
			Rule:    RulePattern,
			Message: fmt.Sprintf("versionLabel %q is not a version-like label", cfg.VersionLabel),
		})
	}

	for key := range cfg.Tags {
		if key == "" {
			errs = append(errs, Issue{Field: "tags", Rule: RuleRequired, Message: "tag keys must be non-empty"})
		}
	}

	return errs
}

// scopeIssues enforces the scope-implies-identifiers invariant: project
// scope requires both orgIdentifier and projectIdentifier, org scope
// requires orgIdentifier, account scope requires neither.
func scopeIssues(cfg config.TemplateConfig) []Issue {
	var errs []Issue
	switch cfg.Scope {
	case config.ScopeProject:
		if cfg.OrgIdentifier == "" {
			errs = append(errs, Issue{
				Field:   "orgIdentifier",
				Rule:    RuleScope,
				Message: "project scope requires orgIdentifier",
			})
		}
		if cfg.ProjectIdentifier == "" {
			errs = append(errs, Issue{
				Field:   "projectIdentifier",
				Rule:    RuleScope,
				Message: "project scope requires projectIdentifier",
			})
		}
	case config.ScopeOrg:
		if cfg.OrgIdentifier == "" {
			errs = append(errs, Issue{
				Field:   "orgIdentifier",
				Rule:    RuleScope,
				Message: "org scope requires orgIdentifier",
			})
		}
	case config.ScopeAccount:
		// No identifier requirements.
	}
	return errs
}

// specIssues dispatches to the type-specific spec schema. StepGroup and
// SecretManager templates fall back to the base schema, so only the spec
// payload kind is cross-checked for them.
func specIssues(cfg config.TemplateConfig) []Issue {
	var errs []Issue

	if cfg.Spec != nil && cfg.Spec.Kind() != cfg.Type {
		errs = append(errs, Issue{
			Field:   "spec",
			Rule:    RuleType,
			Message: fmt.Sprintf("spec payload is for type %q, template declares %q", cfg.Spec.Kind(), cfg.Type),
		})
		return errs
	}

	switch cfg.Type {
	case config.TemplateStep:
		step, ok := cfg.Spec.(config.StepConfig)
		if !ok {
			return append(errs, Issue{Field: "spec", Rule: RuleRequired, Message: "step template requires a spec"})
		}
		if step.Type == "" {
			errs = append(errs, Issue{Field: "spec.type", Rule: RuleRequired, Message: "step spec requires a type"})
		}
	case config.TemplateStage:
		stage, ok := cfg.Spec.(config.StageConfig)
		if !ok {
			return append(errs, Issue{Field: "spec", Rule: RuleRequired, Message: "stage template requires a spec"})
		}
		if stage.Type == "" {
			errs = append(errs, Issue{Field: "spec.type", Rule: RuleRequired, Message: "stage spec requires a type"})
		}
	case config.TemplatePipeline:
		spec, ok := cfg.Spec.(config.PipelineSpec)
		if !ok {
			return append(errs, Issue{Field: "spec", Rule: RuleRequired, Message: "pipeline template requires a spec"})
		}
		errs = append(errs, pipelineSpecIssues(spec)...)
	case config.TemplateStepGroup, config.TemplateSecretManager:
		// Base schema only.
	}

	return errs
}

// pipelineSpecIssues validates the stages, variables, and notification
// rules of a pipeline spec, accumulating every violation.
func pipelineSpecIssues(spec config.PipelineSpec) []Issue {
	var errs []Issue

	if len(spec.Stages) == 0 {
		errs = append(errs, Issue{
			Field:   "spec.stages",
			Rule:    RuleRequired,
			Message: "pipeline spec requires at least one stage",
		})
	}
	for i, stage := range spec.Stages {
		if stage.Name == "" {
			errs = append(errs, Issue{
				Field:   fmt.Sprintf("spec.stages[%d].name", i),
				Rule:    RuleRequired,
				Message: "stage name is required",
			})
		}
		if stage.Type == "" {
			errs = append(errs, Issue{
				Field:   fmt.Sprintf("spec.stages[%d].type", i),
				Rule:    RuleRequired,
				Message: "stage type is required",
			})
		}
	}
	for i, v := range spec.Variables {
		if v.Name == "" {
			errs = append(errs, Issue{
				Field:   fmt.Sprintf("spec.variables[%d].name", i),
				Rule:    RuleRequired,
				Message: "variable name is required",
			})
		}
		if v.Type == "" {
			errs = append(errs, Issue{
				Field:   fmt.Sprintf("spec.variables[%d].type", i),
				Rule:    RuleRequired,
				Message: "variable type is required",
			})
		}
	}
	for i, r := range spec.NotificationRules {
		if len(r.Events) == 0 {
			errs = append(errs, Issue{
				Field:   fmt.Sprintf("spec.notificationRules[%d].events", i),
				Rule:    RuleRequired,
				Message: "notification rule requires at least one event",
			})
		}
		if r.Method.Type == "" {
			errs = append(errs, Issue{
				Field:   fmt.Sprintf("spec.notificationRules[%d].notificationMethod.type", i),
				Rule:    RuleRequired,
				Message: "notification method type is required",
			})
		}
	}

	return errs
}

// bestPracticeWarnings reports non-blocking findings.
func bestPracticeWarnings(cfg config.TemplateConfig) []Issue {
	var warnings []Issue

	if cfg.Description == "" {
		warnings = append(warnings, Issue{
			Field:   "description",
			Rule:    RuleBestPractice,
			Message: "add a description so consumers know what the template does",
		})
	}
	if len(cfg.Tags) == 0 {
		warnings = append(warnings, Issue{
			Field:   "tags",
			Rule:    RuleBestPractice,
			Message: "add tags to make the template discoverable",
		})
	}
	if !isStrictSemver(cfg.VersionLabel) {
		warnings = append(warnings, Issue{
			Field:   "versionLabel",
			Rule:    RuleBestPractice,
			Message: fmt.Sprintf("versionLabel %q is not strict semver (MAJOR.MINOR.PATCH)", cfg.VersionLabel),
		})
	}

	return warnings
}

func isStrictSemver(label string) bool {
	_, err := semver.StrictNewVersion(strings.TrimPrefix(label, "v"))
	return err == nil
}
