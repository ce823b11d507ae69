// Package environment assembles deployment environment artifacts.
package environment

import (
	"gopkg.in/yaml.v3"

	"pipeforge/internal/domain/build"
	"pipeforge/internal/domain/config"
	"pipeforge/internal/domain/render"
)

// Generate renders an environment configuration to its text artifact. The
// overrides block appears only when at least one category is populated;
// absent categories are omitted, never rendered as empty lists.
func Generate(cfg config.EnvironmentConfig) string {
	body := build.Mapping()
	build.PutString(body, "name", cfg.Name)
	build.PutString(body, "identifier", build.Identifier(cfg.Name, cfg.Identifier))
	build.PutString(body, "description", cfg.Description)
	build.PutStringMap(body, "tags", cfg.Tags)
	build.PutString(body, "type", cfg.Type.String())
	build.PutString(body, "orgIdentifier", cfg.OrgIdentifier)
	build.PutString(body, "projectIdentifier", cfg.ProjectIdentifier)
	build.Put(body, "variables", build.Variables(cfg.Variables))
	build.Put(body, "overrides", overrides(cfg.Overrides))

	return render.MustMarshal(build.Document("environment", body))
}

func overrides(o *config.Overrides) *yaml.Node {
	if o == nil || o.IsZero() {
		return nil
	}
	node := build.Mapping()
	build.Put(node, "manifests", manifestOverrides(o.Manifests))
	build.Put(node, "configFiles", configFileOverrides(o.ConfigFiles))
	build.Put(node, "variables", build.Variables(o.Variables))
	return node
}

// manifestOverrides emits one fixed values-override entry whenever any
// manifest override is supplied, regardless of the supplied contents.
// TODO: render the supplied manifest overrides instead of this fixed entry
// once the override contract is settled; the current behavior matches the
// consumers that depend on it today.
func manifestOverrides(manifests []config.ManifestOverride) *yaml.Node {
	if len(manifests) == 0 {
		return nil
	}
	spec := build.Mapping()
	store := build.Mapping()
	build.PutString(store, "type", "Harness")
	storeSpec := build.Mapping()
	build.Put(storeSpec, "files", build.StringSequence([]string{"/values-override.yaml"}))
	build.Put(store, "spec", storeSpec)
	build.Put(spec, "store", store)

	manifest := build.Mapping()
	build.PutString(manifest, "identifier", "values_override")
	build.PutString(manifest, "type", "Values")
	build.Put(manifest, "spec", spec)

	entry := build.Mapping()
	build.Put(entry, "manifest", manifest)
	return build.Sequence(entry)
}

func configFileOverrides(files []config.ConfigFileOverride) *yaml.Node {
	if len(files) == 0 {
		return nil
	}
	items := make([]*yaml.Node, 0, len(files))
	for _, f := range files {
		configFile := build.Mapping()
		build.PutString(configFile, "identifier", f.Identifier)
		build.Put(configFile, "paths", build.StringSequence(f.Paths))

		entry := build.Mapping()
		build.Put(entry, "configFile", configFile)
		items = append(items, entry)
	}
	return build.Sequence(items...)
}
