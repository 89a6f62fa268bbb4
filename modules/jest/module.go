// Package jest synthesizes the test task and, for compiled tests with
// colocated snapshots, the snapshot resolver artifact.
package jest

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/specialistvlad/projforge/internal/config"
	"github.com/specialistvlad/projforge/internal/ctxlog"
	"github.com/specialistvlad/projforge/internal/project"
	"github.com/specialistvlad/projforge/internal/registry"
	"github.com/specialistvlad/projforge/internal/snapshot"
	"github.com/specialistvlad/projforge/internal/task"
)

// ResolverFileName is the resolver artifact name inside the test directory.
const ResolverFileName = "snapshot-resolver.js"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the component with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterComponent("jest", Synthesize)
}

// ResolverPath returns the resolver artifact path for a test directory.
func ResolverPath(testDir string) string {
	return path.Join(testDir, ResolverFileName)
}

// Synthesize adds the test task. Any cleanup it needs is prepended after the
// jest command is in place.
func Synthesize(ctx context.Context, p *project.Project) error {
	logger := ctxlog.FromContext(ctx)
	cfg := p.Model.Jest
	if cfg == nil {
		cfg = &config.Jest{}
	}
	prj := p.Model.Project

	args := []string{"jest"}
	if cfg.CompiledTests && cfg.ColocatedSnapshots {
		roots := p.SnapshotRoots()
		src, err := snapshot.RenderResolver(roots)
		if err != nil {
			return fmt.Errorf("failed to render snapshot resolver: %w", err)
		}
		resolver := ResolverPath(prj.TestDir)
		if err := p.AddFile(resolver, src); err != nil {
			return err
		}
		args = append(args, "--snapshotResolver", "./"+resolver)
		logger.Debug("Snapshot resolver rendered.",
			"file", resolver,
			"source_root", roots.SourceTestRoot,
			"compiled_root", roots.CompiledTestRoot,
		)
	}
	for _, arg := range cfg.Args {
		args = append(args, quoteArg(arg))
	}

	if _, err := p.Tasks.AddTask(task.TestTask,
		task.WithCategory(task.CategoryTest),
		task.WithDescription("Run tests"),
		task.WithExec(strings.Join(args, " ")),
	); err != nil {
		return err
	}

	return task.ApplyColocatedCleanup(p.Tasks, p.Policy(), cfg.CompiledTests, prj.LibDir)
}

// quoteArg single-quotes arg unless every byte is safe to pass to a shell
// unquoted.
func quoteArg(arg string) string {
	if arg == "" {
		return "''"
	}
	if strings.IndexFunc(arg, func(r rune) bool { return !isSafeRune(r) }) < 0 {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

func isSafeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune("-_./=:,+@%", r)
}
