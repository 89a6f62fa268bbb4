package task

import "fmt"

// Category classifies a task for reporting. It has no effect on execution
// order.
type Category string

const (
	CategoryBuild    Category = "00.build"
	CategoryTest     Category = "10.test"
	CategoryRelease  Category = "20.release"
	CategoryMaintain Category = "30.maintain"
	CategoryMisc     Category = "99.misc"
)

// ParseCategory maps a short category name (build, test, release, maintain,
// misc) to a Category. An empty name is misc.
func ParseCategory(name string) (Category, error) {
	switch name {
	case "build":
		return CategoryBuild, nil
	case "test":
		return CategoryTest, nil
	case "release":
		return CategoryRelease, nil
	case "maintain":
		return CategoryMaintain, nil
	case "misc", "":
		return CategoryMisc, nil
	default:
		return "", fmt.Errorf("unknown task category %q", name)
	}
}

// Step is a single unit of a task. Exactly one of Exec and Spawn is set.
type Step struct {
	Exec  string `json:"exec,omitempty" yaml:"exec,omitempty"`
	Spawn string `json:"spawn,omitempty" yaml:"spawn,omitempty"`
}

// IsSpawn reports whether the step runs another task.
func (s Step) IsSpawn() bool {
	return s.Spawn != ""
}

// ExecStep returns a step that runs command.
func ExecStep(command string) Step {
	return Step{Exec: command}
}

// SpawnStep returns a step that runs the task called name.
func SpawnStep(name string) Step {
	return Step{Spawn: name}
}

// Task is a named, ordered list of steps. Steps can be appended or
// prepended while the project is being synthesized; nothing removes them.
type Task struct {
	Name        string
	Category    Category
	Description string
	steps       []Step
}

// Option configures a task at creation time.
type Option func(*Task)

// WithCategory sets the task category.
func WithCategory(c Category) Option {
	return func(t *Task) { t.Category = c }
}

// WithDescription sets the human readable description.
func WithDescription(d string) Option {
	return func(t *Task) { t.Description = d }
}

// WithExec appends the given commands as the task's initial steps.
func WithExec(commands ...string) Option {
	return func(t *Task) {
		for _, c := range commands {
			t.Exec(c)
		}
	}
}

// Exec appends a shell command step.
func (t *Task) Exec(command string) {
	t.steps = append(t.steps, ExecStep(command))
}

// Spawn appends a step that runs another task.
func (t *Task) Spawn(name string) {
	t.steps = append(t.steps, SpawnStep(name))
}

// PrependExec inserts a shell command before every existing step.
func (t *Task) PrependExec(command string) {
	t.prepend(ExecStep(command))
}

// PrependSpawn inserts a spawn step before every existing step.
func (t *Task) PrependSpawn(name string) {
	t.prepend(SpawnStep(name))
}

func (t *Task) prepend(s Step) {
	steps := make([]Step, 0, len(t.steps)+1)
	steps = append(steps, s)
	t.steps = append(steps, t.steps...)
}

// Steps returns a copy of the task's steps in execution order.
func (t *Task) Steps() []Step {
	out := make([]Step, len(t.steps))
	copy(out, t.steps)
	return out
}
