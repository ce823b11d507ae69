package validate

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"pipeforge/internal/domain/config"
)

// ValidateYAML parses a template document and validates it. Parse
// failures and a missing top-level template key each return a single
// error; they are never raised as Go errors or panics.
func ValidateYAML(text string) Result {
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return invalid(Issue{
			Rule:    RuleParse,
			Message: fmt.Sprintf("document is not valid YAML: %v", err),
		})
	}
	if _, ok := doc["template"]; !ok {
		return invalid(Issue{
			Rule:    RuleParse,
			Message: "document has no top-level template key",
		})
	}

	cfg, err := config.ParseTemplate([]byte(text))
	if err != nil {
		return invalid(Issue{
			Field:   "template",
			Rule:    RuleParse,
			Message: fmt.Sprintf("template does not match the document model: %v", err),
		})
	}
	return ValidateTemplateConfig(*cfg)
}
