package task

import (
	"fmt"
	"strings"
)

// Well-known task names.
const (
	BuildTask   = "build"
	CompileTask = "compile"
	TestTask    = "test"
	PackageTask = "package"
)

// Policy decides whether the build task compiles before it tests.
type Policy int

const (
	// TestBeforeCompile runs the test task, then the compile task.
	TestBeforeCompile Policy = iota
	// CompileBeforeTest runs the compile task, then the test task.
	CompileBeforeTest
)

// PolicyFor maps the compile_before_test project flag to a Policy.
func PolicyFor(compileBeforeTest bool) Policy {
	if compileBeforeTest {
		return CompileBeforeTest
	}
	return TestBeforeCompile
}

// Order returns the names of the tasks the build task spawns, in order,
// excluding packaging.
func (p Policy) Order() []string {
	switch p {
	case CompileBeforeTest:
		return []string{CompileTask, TestTask}
	default:
		return []string{TestTask, CompileTask}
	}
}

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case CompileBeforeTest:
		return "compile-before-test"
	case TestBeforeCompile:
		return "test-before-compile"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// BuildSteps returns the spawn steps of the build task for policy. When
// packaging is enabled the package task is spawned last.
func BuildSteps(policy Policy, packaging bool) []Step {
	names := policy.Order()
	if packaging {
		names = append(names, PackageTask)
	}
	steps := make([]Step, 0, len(names))
	for _, n := range names {
		steps = append(steps, SpawnStep(n))
	}
	return steps
}

// ConfigureBuild creates the build task if the graph lacks one and appends
// the spawn steps chosen by policy and packaging.
func ConfigureBuild(g *Graph, policy Policy, packaging bool) (*Task, error) {
	build, ok := g.Task(BuildTask)
	if !ok {
		var err error
		build, err = g.AddTask(BuildTask,
			WithCategory(CategoryBuild),
			WithDescription("Full release build"),
		)
		if err != nil {
			return nil, err
		}
	}
	for _, s := range BuildSteps(policy, packaging) {
		build.Spawn(s.Spawn)
	}
	return build, nil
}

// CleanupCommand is the command that removes the compiled output directory.
func CleanupCommand(compiledDir string) string {
	return "rm -fr " + strings.TrimSuffix(compiledDir, "/") + "/"
}

// PrependCleanup inserts the compiled output cleanup before every existing
// step of t, so stale artifacts from a previous run are gone before tests
// start.
func PrependCleanup(t *Task, compiledDir string) {
	t.PrependExec(CleanupCommand(compiledDir))
}

// ApplyColocatedCleanup prepends the cleanup to the test task when tests run
// before compilation and live under the compiled output directory. In every
// other combination the graph is left untouched.
func ApplyColocatedCleanup(g *Graph, policy Policy, compiledTests bool, compiledDir string) error {
	if policy != TestBeforeCompile || !compiledTests {
		return nil
	}
	test, ok := g.Task(TestTask)
	if !ok {
		return fmt.Errorf("cannot prepend cleanup: task %q not found", TestTask)
	}
	PrependCleanup(test, compiledDir)
	return nil
}
