// Package validate checks configuration models against the template schema,
// the scope hierarchy, and the semantic invariants generated artifacts are
// trusted to hold.
//
// Every outcome is returned as data. Validation never panics and never
// returns a Go error: parse failures, schema violations, and best-practice
// findings all land in a Result so a caller can fix everything reported in
// one pass.
package validate

// Rule identifiers attached to issues, so callers can map an issue back to
// the constraint that produced it.
const (
	RuleRequired     = "required"
	RulePattern      = "pattern"
	RuleEnum         = "enum"
	RuleLength       = "length"
	RuleScope        = "scope"
	RuleType         = "type"
	RuleParse        = "parse"
	RuleInput        = "input"
	RuleBestPractice = "best-practice"
)

// Issue is a single validation finding.
type Issue struct {
	Field   string // dotted path to the offending field, empty for document-level findings
	Rule    string
	Message string
}

// Result is the outcome of one validation call. Warnings never affect
// Valid: a result with only warnings is valid.
type Result struct {
	Valid    bool
	Errors   []Issue
	Warnings []Issue
}

// resultOf assembles a Result from collected errors and warnings.
func resultOf(errors, warnings []Issue) Result {
	return Result{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}

// invalid returns a Result carrying exactly the given errors.
func invalid(errors ...Issue) Result {
	return Result{Valid: false, Errors: errors}
}
