package validate

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"pipeforge/internal/domain/config"
)

// InputPlaceholder is the literal token marking a "fill this in at
// consumption time" value inside a template spec.
const InputPlaceholder = "<+input>"

// InputDefinition is an input recovered from a template spec. Extracted
// inputs are always required strings; Name is the last mapping key on the
// path to the placeholder and Path is the full location for reporting.
type InputDefinition struct {
	Name     string
	Path     string
	Type     string
	Required bool
}

// ExtractInputDefinitions walks the whole spec tree, objects, arrays, and
// scalars alike, and registers a definition for every string value that
// contains the input placeholder token. Traversal order is deterministic:
// mapping keys are visited sorted, sequences in order.
func ExtractInputDefinitions(spec config.TemplateSpec) []InputDefinition {
	tree := specTree(spec)
	if tree == nil {
		return nil
	}
	var defs []InputDefinition
	extract(tree, "", "", &defs)
	return defs
}

// specTree flattens a typed spec payload into a generic value tree. The
// payload is plain data by contract, so a marshal failure cannot carry any
// inputs worth reporting; it yields an empty tree rather than an error.
func specTree(spec config.TemplateSpec) any {
	if spec == nil {
		return nil
	}
	data, err := yaml.Marshal(spec)
	if err != nil {
		return nil
	}
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil
	}
	return tree
}

func extract(value any, path, lastKey string, defs *[]InputDefinition) {
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			extract(v[k], joinPath(path, k), k, defs)
		}
	case []any:
		for i, item := range v {
			extract(item, fmt.Sprintf("%s[%d]", path, i), lastKey, defs)
		}
	case string:
		if strings.Contains(v, InputPlaceholder) {
			*defs = append(*defs, InputDefinition{
				Name:     lastKey,
				Path:     path,
				Type:     "string",
				Required: true,
			})
		}
	}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// ValidateTemplateInputs extracts the input definitions of a template and
// checks the supplied values against them. A registered-but-unsupplied
// required input and a supplied value of the wrong runtime type are
// errors; a supplied input with no registered definition is only a
// warning, since generic consumers may legitimately pass extra context.
func ValidateTemplateInputs(cfg config.TemplateConfig, inputs map[string]any) Result {
	defs := ExtractInputDefinitions(cfg.Spec)

	var errs, warnings []Issue
	known := make(map[string]bool, len(defs))
	for _, def := range defs {
		known[def.Name] = true

		value, supplied := inputs[def.Name]
		if !supplied {
			if def.Required {
				errs = append(errs, Issue{
					Field:   def.Path,
					Rule:    RuleInput,
					Message: fmt.Sprintf("required input %q is not supplied", def.Name),
				})
			}
			continue
		}
		if _, ok := value.(string); !ok {
			errs = append(errs, Issue{
				Field:   def.Path,
				Rule:    RuleInput,
				Message: fmt.Sprintf("input %q must be a %s, got %T", def.Name, def.Type, value),
			})
		}
	}

	extras := make([]string, 0, len(inputs))
	for name := range inputs {
		if !known[name] {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		warnings = append(warnings, Issue{
			Field:   name,
			Rule:    RuleInput,
			Message: fmt.Sprintf("input %q does not match any declared input", name),
		})
	}

	return resultOf(errs, warnings)
}
