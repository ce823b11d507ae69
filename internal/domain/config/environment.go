package config

// EnvironmentType classifies a deployment environment.
type EnvironmentType string

// EnvironmentType constants.
const (
	EnvironmentProduction    EnvironmentType = "Production"
	EnvironmentPreProduction EnvironmentType = "PreProduction"
)

// IsValid reports whether the environment type is one of the known values.
func (t EnvironmentType) IsValid() bool {
	return t == EnvironmentProduction || t == EnvironmentPreProduction
}

// String returns the environment type as a string.
func (t EnvironmentType) String() string {
	return string(t)
}

// ManifestOverride replaces a service-level manifest for one environment.
type ManifestOverride struct {
	Identifier string
	Type       string // Values, Kustomize, OpenshiftParam
	Path       string
}

// ConfigFileOverride replaces service-level config files for one environment.
type ConfigFileOverride struct {
	Identifier string
	Paths      []string
}

// Overrides groups the per-environment replacement categories. A category
// left empty is omitted from the generated artifact entirely.
type Overrides struct {
	Manifests   []ManifestOverride
	ConfigFiles []ConfigFileOverride
	Variables   []Variable
}

// IsZero reports whether no override category is populated.
func (o Overrides) IsZero() bool {
	return len(o.Manifests) == 0 && len(o.ConfigFiles) == 0 && len(o.Variables) == 0
}

// EnvironmentConfig describes a deployment environment artifact.
type EnvironmentConfig struct {
	Name              string
	Identifier        string
	OrgIdentifier     string
	ProjectIdentifier string
	Type              EnvironmentType
	Description       string
	Tags              map[string]string
	Variables         []Variable
	Overrides         *Overrides
}
