// Package typescript synthesizes the compiler configuration artifacts and
// the compile task.
package typescript

import (
	"context"
	"fmt"
	"path"

	"github.com/specialistvlad/projforge/internal/config"
	"github.com/specialistvlad/projforge/internal/ctxlog"
	"github.com/specialistvlad/projforge/internal/project"
	"github.com/specialistvlad/projforge/internal/registry"
	"github.com/specialistvlad/projforge/internal/task"
	"github.com/specialistvlad/projforge/internal/tsconfig"
)

// Default artifact names.
const (
	MainFileName = "tsconfig.json"
	DevFileName  = "tsconfig.dev.json"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the component with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterComponent("typescript", Synthesize)
}

// baseOptions are the compiler options every project starts from.
func baseOptions(rootDir, outDir string) tsconfig.Options {
	return tsconfig.Options{
		"rootDir":     rootDir,
		"outDir":      outDir,
		"declaration": true,
		"strict":      true,
		"target":      "ES2020",
		"module":      "commonjs",
	}
}

// MainBase is the fragment tsconfig.json starts from.
func MainBase(p *config.Project) *tsconfig.Fragment {
	return &tsconfig.Fragment{
		FileName: MainFileName,
		Include:  []string{path.Join(p.SrcDir, "**/*.ts")},
		Exclude:  []string{"node_modules"},
		Options:  baseOptions(p.SrcDir, p.LibDir),
	}
}

// DevBase is the fragment tsconfig.dev.json starts from. It spans sources
// and tests, so its compiled tests land under <libdir>/<testdir>.
func DevBase(p *config.Project) *tsconfig.Fragment {
	return &tsconfig.Fragment{
		FileName: DevFileName,
		Include: []string{
			path.Join(p.SrcDir, "**/*.ts"),
			path.Join(p.TestDir, "**/*.ts"),
		},
		Exclude: []string{"node_modules"},
		Options: baseOptions(".", p.LibDir),
	}
}

func toFragment(f *config.Fragment) *tsconfig.Fragment {
	return &tsconfig.Fragment{
		FileName: f.FileName,
		Include:  f.Include,
		Exclude:  f.Exclude,
		Options:  tsconfig.Options(f.Options),
	}
}

// Resolve merges the base fragment for target with the user fragments aimed
// at it, in file order.
func Resolve(model *config.Model, target string) *tsconfig.Fragment {
	fragments := []*tsconfig.Fragment{MainBase(model.Project)}
	if target == config.TargetDev {
		fragments = []*tsconfig.Fragment{DevBase(model.Project)}
	}
	for _, f := range model.FragmentsFor(target) {
		fragments = append(fragments, toFragment(f))
	}
	return tsconfig.Merge(fragments...)
}

// compileCommand builds a config file, naming it only when it is not the
// compiler's default.
func compileCommand(fileName string) string {
	if fileName == MainFileName {
		return "tsc --build"
	}
	return "tsc --build " + fileName
}

// Synthesize writes both configuration artifacts and adds the compile task.
// Compiled tests additionally need the dev configuration built.
func Synthesize(ctx context.Context, p *project.Project) error {
	logger := ctxlog.FromContext(ctx)

	main := Resolve(p.Model, config.TargetMain)
	dev := Resolve(p.Model, config.TargetDev)

	for _, f := range []*tsconfig.Fragment{main, dev} {
		data, err := tsconfig.Render(f)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", f.FileName, err)
		}
		if err := p.AddFile(f.FileName, data); err != nil {
			return err
		}
		logger.Debug("Merged compiler configuration.", "file", f.FileName, "options", len(f.Options))
	}

	compile, err := p.Tasks.AddTask(task.CompileTask,
		task.WithCategory(task.CategoryBuild),
		task.WithDescription("Only compile"),
		task.WithExec(compileCommand(main.FileName)),
	)
	if err != nil {
		return err
	}
	if p.Model.Jest != nil && p.Model.Jest.CompiledTests {
		compile.Exec(compileCommand(dev.FileName))
	}
	return nil
}
