package validate

import (
	"fmt"
	"regexp"
)

// templateRefPattern matches a template reference: an optional scope
// prefix (account. or org.) followed by an identifier.
var templateRefPattern = regexp.MustCompile(`^(account\.|org\.)?[a-zA-Z_][a-zA-Z0-9_]*$`)

// ValidateTemplateRef checks a template reference string.
func ValidateTemplateRef(ref string) Result {
	if ref == "" {
		return invalid(Issue{Field: "templateRef", Rule: RuleRequired, Message: "template reference is required"})
	}
	if !templateRefPattern.MatchString(ref) {
		return invalid(Issue{
			Field:   "templateRef",
			Rule:    RulePattern,
			Message: fmt.Sprintf("template reference %q must be an identifier with an optional account. or org. prefix", ref),
		})
	}
	return Result{Valid: true}
}
