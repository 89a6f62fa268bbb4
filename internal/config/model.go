package config

import "fmt"

// Fragment targets.
const (
	TargetMain = "main"
	TargetDev  = "dev"
)

// Model is the unified, format-agnostic representation of one project.
type Model struct {
	Project   *Project
	Jest      *Jest
	Fragments []*Fragment
	Tasks     []*TaskDefinition
	Ignore    []string
}

// Project holds the layout and policy flags of the project.
type Project struct {
	Name              string
	SrcDir            string
	TestDir           string
	LibDir            string
	CompileBeforeTest bool
	Package           bool
}

// Jest configures the test component.
type Jest struct {
	// CompiledTests runs tests from the compiled output tree
	// (<libdir>/<testdir>) instead of the TypeScript sources.
	CompiledTests bool
	// ColocatedSnapshots keeps snapshots next to the authored tests.
	ColocatedSnapshots bool
	Args               []string
}

// Fragment is a user-authored tsconfig contribution.
type Fragment struct {
	Target   string
	FileName string
	Include  []string
	Exclude  []string
	Options  map[string]any
}

// TaskDefinition is a user-authored task.
type TaskDefinition struct {
	Name        string
	Category    string
	Description string
	Steps       []StepDefinition
}

// StepDefinition is one step of a user-authored task. Exactly one of Exec
// and Spawn is set.
type StepDefinition struct {
	Exec  string
	Spawn string
}

// Default project layout.
const (
	DefaultSrcDir  = "src"
	DefaultTestDir = "test"
	DefaultLibDir  = "lib"
)

// NewProject returns a project with the default layout and policy flags.
func NewProject(name string) *Project {
	return &Project{
		Name:    name,
		SrcDir:  DefaultSrcDir,
		TestDir: DefaultTestDir,
		LibDir:  DefaultLibDir,
		Package: true,
	}
}

// Validate checks the model for missing or conflicting settings.
func (m *Model) Validate() error {
	if m.Project == nil {
		return fmt.Errorf("a project block is required")
	}
	if m.Project.Name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	for _, dir := range []struct{ name, val string }{
		{"srcdir", m.Project.SrcDir},
		{"testdir", m.Project.TestDir},
		{"libdir", m.Project.LibDir},
	} {
		if dir.val == "" {
			return fmt.Errorf("project %q: %s cannot be empty", m.Project.Name, dir.name)
		}
	}
	for _, f := range m.Fragments {
		if f.Target != TargetMain && f.Target != TargetDev {
			return fmt.Errorf("tsconfig %q: target must be %q or %q", f.Target, TargetMain, TargetDev)
		}
	}
	for _, t := range m.Tasks {
		for i, s := range t.Steps {
			if (s.Exec == "") == (s.Spawn == "") {
				return fmt.Errorf("task %q, step %d: exactly one of exec or spawn must be set", t.Name, i)
			}
		}
	}
	return nil
}

// FragmentsFor returns the user fragments aimed at target, in file order.
func (m *Model) FragmentsFor(target string) []*Fragment {
	var out []*Fragment
	for _, f := range m.Fragments {
		if f.Target == target {
			out = append(out, f)
		}
	}
	return out
}
