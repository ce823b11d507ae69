// Package pipeline assembles full pipeline artifacts.
package pipeline

import (
	"pipeforge/internal/domain/build"
	"pipeforge/internal/domain/config"
	"pipeforge/internal/domain/render"
)

// Generate renders a pipeline configuration to its text artifact. The
// function is pure: no IO, no retries, and an unchanged configuration
// always produces byte-identical output.
func Generate(cfg config.PipelineConfig) string {
	body := build.Mapping()
	build.PutString(body, "name", cfg.Name)
	build.PutString(body, "identifier", build.Identifier(cfg.Name, cfg.Identifier))
	build.PutString(body, "description", cfg.Description)
	build.PutStringMap(body, "tags", cfg.Tags)
	build.PutString(body, "orgIdentifier", cfg.OrgIdentifier)
	build.PutString(body, "projectIdentifier", cfg.ProjectIdentifier)
	build.PutAny(body, "properties", cfg.Properties)
	build.Put(body, "stages", build.Stages(cfg.Stages))
	build.Put(body, "variables", build.Variables(cfg.Variables))
	build.Put(body, "notificationRules", build.NotificationRules(cfg.NotificationRules))

	return render.MustMarshal(build.Document("pipeline", body))
}
