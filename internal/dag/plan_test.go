package dag

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/projforge/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTasks(t *testing.T) *task.Graph {
	t.Helper()
	g := task.NewGraph()
	_, err := g.AddTask("compile", task.WithExec("tsc --build"))
	require.NoError(t, err)
	test, err := g.AddTask("test", task.WithExec("jest"))
	require.NoError(t, err)
	task.PrependCleanup(test, "lib")
	_, err = g.AddTask("package", task.WithExec("mkdir -p dist/js"), task.WithExec("npm pack --pack-destination dist/js"))
	require.NoError(t, err)
	_, err = task.ConfigureBuild(g, task.TestBeforeCompile, true)
	require.NoError(t, err)
	return g
}

func TestPlan(t *testing.T) {
	got, err := Plan(buildTasks(t), "build")
	require.NoError(t, err)

	want := []PlanStep{
		{Task: "test", Command: "rm -fr lib/"},
		{Task: "test", Command: "jest"},
		{Task: "compile", Command: "tsc --build"},
		{Task: "package", Command: "mkdir -p dist/js"},
		{Task: "package", Command: "npm pack --pack-destination dist/js"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("plan mismatch (-want +got):\n%s", diff)
	}
}

func TestPlan_NestedAndRepeatedSpawns(t *testing.T) {
	g := task.NewGraph()
	_, err := g.AddTask("lint", task.WithExec("eslint ."))
	require.NoError(t, err)
	check, err := g.AddTask("check")
	require.NoError(t, err)
	check.Spawn("lint")
	check.Exec("tsc --noEmit")
	check.Spawn("lint")
	ci, err := g.AddTask("ci", task.WithExec("echo start"))
	require.NoError(t, err)
	ci.Spawn("check")

	got, err := Plan(g, "ci")
	require.NoError(t, err)
	assert.Equal(t, []PlanStep{
		{Task: "ci", Command: "echo start"},
		{Task: "lint", Command: "eslint ."},
		{Task: "check", Command: "tsc --noEmit"},
		{Task: "lint", Command: "eslint ."},
	}, got)
}

func TestPlan_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		setup func(g *task.Graph)
		want  string
	}{
		{
			name:  "unknown task",
			setup: func(g *task.Graph) {},
			want:  `task "build" not found`,
		},
		{
			name: "unknown spawn target",
			setup: func(g *task.Graph) {
				b, _ := g.AddTask("build")
				b.Spawn("compile")
			},
			want: `task "build" spawns unknown task "compile"`,
		},
		{
			name: "self spawn",
			setup: func(g *task.Graph) {
				b, _ := g.AddTask("build")
				b.Spawn("build")
			},
			want: `task "build" spawns itself`,
		},
		{
			name: "cycle",
			setup: func(g *task.Graph) {
				b, _ := g.AddTask("build")
				c, _ := g.AddTask("compile")
				b.Spawn("compile")
				c.Spawn("build")
			},
			want: "cycle detected",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := task.NewGraph()
			tc.setup(g)
			_, err := Plan(g, "build")
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestFromTasks_Edges(t *testing.T) {
	g, err := FromTasks(buildTasks(t))
	require.NoError(t, err)

	deps, err := g.Dependencies("build")
	require.NoError(t, err)
	assert.Equal(t, []string{"compile", "package", "test"}, deps)

	dependents, err := g.Dependents("compile")
	require.NoError(t, err)
	assert.Equal(t, []string{"build"}, dependents)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(buildTasks(t)))
	assert.NoError(t, Validate(task.NewGraph()))
}
