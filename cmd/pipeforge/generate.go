package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pipeforge/internal/domain/config"
	"pipeforge/internal/domain/environment"
	"pipeforge/internal/domain/pipeline"
	"pipeforge/internal/domain/template"
	"pipeforge/internal/domain/validate"
	"pipeforge/internal/ports"
)

var (
	generateFile   string
	generateOutput string
	envPreset      string
	envName        string
	envOrg         string
	envProject     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a YAML artifact from a configuration file",
}

var generatePipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Generate a pipeline artifact",
	RunE: func(_ *cobra.Command, _ []string) error {
		log := newLogger()

		data, err := os.ReadFile(generateFile)
		if err != nil {
			return fileReadError(generateFile, err)
		}
		cfg, err := config.ParsePipeline(data)
		if err != nil {
			return err
		}

		s, err := loadSettings(settingsFile)
		if err != nil {
			return err
		}
		s.applyToPipeline(cfg)

		log.Debug("generating pipeline", ports.F("name", cfg.Name), ports.F("stages", len(cfg.Stages)))
		return writeArtifact(pipeline.Generate(*cfg))
	},
}

var generateTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Validate and generate a template artifact",
	RunE: func(cmd *cobra.Command, _ []string) error {
		log := newLogger()

		data, err := os.ReadFile(generateFile)
		if err != nil {
			return fileReadError(generateFile, err)
		}
		cfg, err := config.ParseTemplate(data)
		if err != nil {
			return err
		}

		s, err := loadSettings(settingsFile)
		if err != nil {
			return err
		}
		s.applyToTemplate(cfg)

		result := validate.ValidateTemplateConfig(*cfg)
		printReport(cmd.ErrOrStderr(), result)
		if !result.Valid {
			return fmt.Errorf("template %q failed validation with %d error(s)", cfg.Name, len(result.Errors))
		}

		log.Debug("generating template",
			ports.F("name", cfg.Name),
			ports.F("type", cfg.Type),
			ports.F("scope", cfg.Scope))
		return writeArtifact(template.NewManager(nil).Generate(*cfg))
	},
}

var generateEnvironmentCmd = &cobra.Command{
	Use:   "environment",
	Short: "Generate an environment artifact",
	RunE: func(_ *cobra.Command, _ []string) error {
		log := newLogger()

		cfg, err := environmentConfig()
		if err != nil {
			return err
		}

		s, err := loadSettings(settingsFile)
		if err != nil {
			return err
		}
		s.applyToEnvironment(cfg)

		log.Debug("generating environment", ports.F("name", cfg.Name), ports.F("type", cfg.Type))
		return writeArtifact(environment.Generate(*cfg))
	},
}

// environmentConfig builds the environment config either from a file or
// from one of the preset constructors.
func environmentConfig() (*config.EnvironmentConfig, error) {
	if envPreset != "" {
		if envName == "" {
			return nil, newUsageError(
				"--preset requires --name",
				"pass --name along with --org and --project",
				nil,
			)
		}
		switch envPreset {
		case "development":
			cfg := environment.NewDevelopmentConfig(envName, envOrg, envProject)
			return &cfg, nil
		case "staging":
			cfg := environment.NewStagingConfig(envName, envOrg, envProject)
			return &cfg, nil
		case "production":
			cfg := environment.NewProductionConfig(envName, envOrg, envProject)
			return &cfg, nil
		default:
			return nil, newUsageError(
				fmt.Sprintf("unknown environment preset %q", envPreset),
				"use one of: development, staging, production",
				nil,
			)
		}
	}

	if generateFile == "" {
		return nil, newUsageError(
			"no configuration given",
			"pass --file with an environment document, or --preset",
			nil,
		)
	}
	data, err := os.ReadFile(generateFile)
	if err != nil {
		return nil, fileReadError(generateFile, err)
	}
	return config.ParseEnvironment(data)
}

// writeArtifact writes the generated text to --output, or stdout.
func writeArtifact(text string) error {
	if generateOutput == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(generateOutput, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}

func init() {
	generateCmd.PersistentFlags().StringVarP(&generateFile, "file", "f", "", "configuration file")
	generateCmd.PersistentFlags().StringVarP(&generateOutput, "output", "o", "", "output file (default: stdout)")

	generateEnvironmentCmd.Flags().StringVar(&envPreset, "preset", "", "environment preset (development, staging, production)")
	generateEnvironmentCmd.Flags().StringVar(&envName, "name", "", "environment name (with --preset)")
	generateEnvironmentCmd.Flags().StringVar(&envOrg, "org", "", "organization identifier (with --preset)")
	generateEnvironmentCmd.Flags().StringVar(&envProject, "project", "", "project identifier (with --preset)")

	generateCmd.AddCommand(generatePipelineCmd)
	generateCmd.AddCommand(generateTemplateCmd)
	generateCmd.AddCommand(generateEnvironmentCmd)
}
