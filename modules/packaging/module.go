// Package packaging adds the task that turns the compiled library into a
// distributable tarball.
package packaging

import (
	"context"

	"github.com/specialistvlad/projforge/internal/ctxlog"
	"github.com/specialistvlad/projforge/internal/project"
	"github.com/specialistvlad/projforge/internal/registry"
	"github.com/specialistvlad/projforge/internal/task"
)

// OutDir receives the packed tarball.
const OutDir = "dist/js"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the component with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterComponent("packaging", Synthesize)
}

// Synthesize adds the package task when packaging is enabled.
func Synthesize(ctx context.Context, p *project.Project) error {
	if !p.Model.Project.Package {
		ctxlog.FromContext(ctx).Debug("Packaging disabled, skipping package task.")
		return nil
	}
	_, err := p.Tasks.AddTask(task.PackageTask,
		task.WithCategory(task.CategoryRelease),
		task.WithDescription("Creates the distribution package"),
		task.WithExec("mkdir -p "+OutDir),
		task.WithExec("npm pack --pack-destination "+OutDir),
	)
	return err
}
