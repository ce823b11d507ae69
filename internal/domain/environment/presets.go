package environment

import "pipeforge/internal/domain/config"

// The preset constructors below are data factories: they pre-populate an
// EnvironmentConfig with the fixed variable defaults common environments
// start from, and nothing else.

// NewDevelopmentConfig returns a pre-production environment tuned for
// development: a single replica and debug logging.
func NewDevelopmentConfig(name, orgID, projectID string) config.EnvironmentConfig {
	return config.EnvironmentConfig{
		Name:              name,
		OrgIdentifier:     orgID,
		ProjectIdentifier: projectID,
		Type:              config.EnvironmentPreProduction,
		Description:       "Development environment",
		Variables: []config.Variable{
			{Name: "replicas", Type: "Number", Value: 1},
			{Name: "log_level", Type: "String", Value: "debug"},
		},
	}
}

// NewStagingConfig returns a pre-production environment tuned for staging:
// two replicas and info logging.
func NewStagingConfig(name, orgID, projectID string) config.EnvironmentConfig {
	return config.EnvironmentConfig{
		Name:              name,
		OrgIdentifier:     orgID,
		ProjectIdentifier: projectID,
		Type:              config.EnvironmentPreProduction,
		Description:       "Staging environment",
		Variables: []config.Variable{
			{Name: "replicas", Type: "Number", Value: 2},
			{Name: "log_level", Type: "String", Value: "info"},
		},
	}
}

// NewProductionConfig returns a production environment: three replicas,
// warn logging, and monitoring enabled.
func NewProductionConfig(name, orgID, projectID string) config.EnvironmentConfig {
	return config.EnvironmentConfig{
		Name:              name,
		OrgIdentifier:     orgID,
		ProjectIdentifier: projectID,
		Type:              config.EnvironmentProduction,
		Description:       "Production environment",
		Variables: []config.Variable{
			{Name: "replicas", Type: "Number", Value: 3},
			{Name: "log_level", Type: "String", Value: "warn"},
			{Name: "monitoring_enabled", Type: "String", Value: "true"},
		},
	}
}
