package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/projforge/internal/dag"
	"github.com/specialistvlad/projforge/internal/project"
	"github.com/specialistvlad/projforge/internal/writer"
)

// Synthesize loads the project and runs every component against it. The
// returned project carries the task manifest as its last artifact.
func (a *App) Synthesize(ctx context.Context) (*project.Project, error) {
	ctx = a.withLogger(ctx)
	a.logger.Debug("Synthesis started.", "path", a.config.ProjectPath)

	model, err := a.loader.Load(ctx, a.config.ProjectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	a.logger.Debug("Project loaded into unified model.", "project", model.Project.Name)

	p := project.New(model)
	if err := a.registry.Synthesize(ctx, p); err != nil {
		return nil, err
	}

	// Spawn targets are resolved by the task runner; a dangling one is only
	// worth a warning here.
	if err := dag.Validate(p.Tasks); err != nil {
		a.logger.Warn("Task graph will not run as synthesized.", "error", err)
	}

	if err := p.RenderManifest(); err != nil {
		return nil, err
	}
	a.logger.Debug("Synthesis finished.", "tasks", p.Tasks.Len(), "files", len(p.Files()))
	return p, nil
}

// Run synthesizes the project and writes the artifacts, or prints their
// diff in dry-run mode.
func (a *App) Run(ctx context.Context) error {
	p, err := a.Synthesize(ctx)
	if err != nil {
		return err
	}
	ctx = a.withLogger(ctx)

	w := writer.New(a.fs, a.config.OutDir)
	var results []writer.Result
	if a.config.DryRun {
		results, err = w.Diff(ctx, a.outW, p.Files())
	} else {
		results, err = w.Write(ctx, p.Files())
	}
	if err != nil {
		return fmt.Errorf("failed to write artifacts: %w", err)
	}

	counts := map[writer.Change]int{}
	for _, r := range results {
		counts[r.Change]++
	}
	a.logger.Info("Synthesis complete.",
		"project", p.Name(),
		"dry_run", a.config.DryRun,
		"created", counts[writer.Created],
		"updated", counts[writer.Updated],
		"unchanged", counts[writer.Unchanged],
	)
	return nil
}
