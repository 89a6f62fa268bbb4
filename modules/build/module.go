// Package build assembles the build task's spawn order. It must run after
// every component that contributes a spawned task.
package build

import (
	"context"

	"github.com/specialistvlad/projforge/internal/ctxlog"
	"github.com/specialistvlad/projforge/internal/project"
	"github.com/specialistvlad/projforge/internal/registry"
	"github.com/specialistvlad/projforge/internal/task"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the component with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterComponent("build", Synthesize)
}

// Synthesize creates or augments the build task.
func Synthesize(ctx context.Context, p *project.Project) error {
	policy := p.Policy()
	t, err := task.ConfigureBuild(p.Tasks, policy, p.Model.Project.Package)
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Build task configured.", "policy", policy.String(), "steps", len(t.Steps()))
	return nil
}
