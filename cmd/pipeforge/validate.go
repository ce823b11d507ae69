package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pipeforge/internal/domain/config"
	"pipeforge/internal/domain/validate"
)

var (
	validateFile   string
	validateInputs []string
)

var validateCmd = &cobra.Command{
	Use:   "validate [templateRef]",
	Short: "Validate a template document or a template reference",
	Long: `Validate checks a template document against the base schema, the scope
hierarchy, and the type-specific spec schema, reporting every violation in
one pass. With --input flags it also checks supplied values against the
runtime inputs declared in the spec. Given a bare argument instead of
--file, it validates the argument as a template reference.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			result := validate.ValidateTemplateRef(args[0])
			printReport(cmd.OutOrStdout(), result)
			if !result.Valid {
				return fmt.Errorf("template reference %q is invalid", args[0])
			}
			return nil
		}

		if validateFile == "" {
			return newUsageError(
				"nothing to validate",
				"pass --file with a template document, or a template reference argument",
				nil,
			)
		}

		data, err := os.ReadFile(validateFile)
		if err != nil {
			return fileReadError(validateFile, err)
		}

		result := validate.ValidateYAML(string(data))
		printReport(cmd.OutOrStdout(), result)
		if !result.Valid {
			return fmt.Errorf("%s failed validation with %d error(s)", validateFile, len(result.Errors))
		}

		if len(validateInputs) > 0 {
			cfg, err := config.ParseTemplate(data)
			if err != nil {
				return err
			}
			inputs, err := parseInputFlags(validateInputs)
			if err != nil {
				return err
			}
			inputResult := validate.ValidateTemplateInputs(*cfg, inputs)
			printReport(cmd.OutOrStdout(), inputResult)
			if !inputResult.Valid {
				return fmt.Errorf("supplied inputs failed validation with %d error(s)", len(inputResult.Errors))
			}
		}
		return nil
	},
}

// parseInputFlags turns repeated --input name=value flags into an input map.
func parseInputFlags(flags []string) (map[string]any, error) {
	inputs := make(map[string]any, len(flags))
	for _, flag := range flags {
		name, value, ok := strings.Cut(flag, "=")
		if !ok || name == "" {
			return nil, newUsageError(
				fmt.Sprintf("malformed input %q", flag),
				"use --input name=value",
				nil,
			)
		}
		inputs[name] = value
	}
	return inputs, nil
}

// printReport writes every error and warning of a validation result.
func printReport(w io.Writer, result validate.Result) {
	for _, issue := range result.Errors {
		fmt.Fprintf(w, "error: %s\n", formatIssue(issue))
	}
	for _, issue := range result.Warnings {
		fmt.Fprintf(w, "warning: %s\n", formatIssue(issue))
	}
}

func formatIssue(issue validate.Issue) string {
	if issue.Field == "" {
		return issue.Message
	}
	return fmt.Sprintf("%s: %s", issue.Field, issue.Message)
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "template document to validate")
	validateCmd.Flags().StringArrayVar(&validateInputs, "input", nil, "runtime input as name=value (repeatable)")
}
