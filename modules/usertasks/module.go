// Package usertasks adds the tasks declared in the project file.
package usertasks

import (
	"context"
	"fmt"

	"github.com/specialistvlad/projforge/internal/config"
	"github.com/specialistvlad/projforge/internal/ctxlog"
	"github.com/specialistvlad/projforge/internal/project"
	"github.com/specialistvlad/projforge/internal/registry"
	"github.com/specialistvlad/projforge/internal/task"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the component with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterComponent("usertasks", Synthesize)
}

// Synthesize adds every user task in declaration order. Spawn targets are
// not resolved here.
func Synthesize(ctx context.Context, p *project.Project) error {
	logger := ctxlog.FromContext(ctx)
	for _, def := range p.Model.Tasks {
		if err := addTask(p.Tasks, def); err != nil {
			return err
		}
		logger.Debug("Added user task.", "task", def.Name, "steps", len(def.Steps))
	}
	return nil
}

func addTask(g *task.Graph, def *config.TaskDefinition) error {
	category, err := task.ParseCategory(def.Category)
	if err != nil {
		return fmt.Errorf("task %q: %w", def.Name, err)
	}
	t, err := g.AddTask(def.Name, task.WithCategory(category), task.WithDescription(def.Description))
	if err != nil {
		return err
	}
	for _, s := range def.Steps {
		if s.Spawn != "" {
			t.Spawn(s.Spawn)
		} else {
			t.Exec(s.Exec)
		}
	}
	return nil
}
