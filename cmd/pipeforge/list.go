package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pipeforge/internal/domain/config"
	"pipeforge/internal/domain/template"
	"pipeforge/internal/domain/template/embedded"
)

var listScope string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates visible at a scope",
	Long: `List shows every known template visible when listing at the requested
scope. Templates registered at a broader scope are visible at narrower
ones: account templates everywhere, org templates at org and project
scope, project templates only at project scope.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		scope, err := config.ParseScope(listScope)
		if err != nil {
			return newUsageError(
				fmt.Sprintf("unknown scope %q", listScope),
				"use one of: project, org, account",
				err,
			)
		}

		registry, err := embedded.LoadRegistry()
		if err != nil {
			return err
		}
		manager := template.NewManager(registry)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "IDENTIFIER\tNAME\tTYPE\tSCOPE\tVERSION")
		for _, info := range manager.List(scope) {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				info.Identifier, info.Name, info.Type, info.Scope, info.VersionLabel)
		}
		return w.Flush()
	},
}

func init() {
	listCmd.Flags().StringVar(&listScope, "scope", "project", "scope to list at (project, org, account)")
}
