package task

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTask(t *testing.T) {
	g := NewGraph()

	build, err := g.AddTask("build", WithCategory(CategoryBuild), WithDescription("Full build"))
	require.NoError(t, err)
	assert.Equal(t, "build", build.Name)
	assert.Equal(t, CategoryBuild, build.Category)
	assert.Equal(t, "Full build", build.Description)
	assert.Empty(t, build.Steps())

	got, ok := g.Task("build")
	require.True(t, ok)
	assert.Same(t, build, got)

	_, ok = g.Task("missing")
	assert.False(t, ok)
}

func TestAddTask_DefaultCategory(t *testing.T) {
	g := NewGraph()
	tk, err := g.AddTask("misc")
	require.NoError(t, err)
	assert.Equal(t, CategoryMisc, tk.Category)
}

func TestAddTask_Duplicate(t *testing.T) {
	g := NewGraph()
	first, err := g.AddTask("build", WithExec("echo first"))
	require.NoError(t, err)

	_, err = g.AddTask("build", WithExec("echo second"))
	require.Error(t, err)

	var dup *DuplicateTaskError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "build", dup.Name)
	assert.EqualError(t, err, `duplicate task name: "build"`)

	// The first task is untouched.
	got, _ := g.Task("build")
	assert.Same(t, first, got)
	assert.Equal(t, []Step{ExecStep("echo first")}, got.Steps())
	assert.Equal(t, 1, g.Len())
}

func TestAddTask_EmptyName(t *testing.T) {
	_, err := NewGraph().AddTask("")
	assert.ErrorContains(t, err, "task name is required")
}

func TestTasks_InsertionOrder(t *testing.T) {
	g := NewGraph()
	for _, name := range []string{"compile", "test", "build", "package"} {
		_, err := g.AddTask(name)
		require.NoError(t, err)
	}

	var names []string
	for _, tk := range g.Tasks() {
		names = append(names, tk.Name)
	}
	assert.Equal(t, []string{"compile", "test", "build", "package"}, names)
}

func TestTask_AppendAndPrepend(t *testing.T) {
	g := NewGraph()
	tk, err := g.AddTask("test", WithExec("jest"))
	require.NoError(t, err)

	tk.Exec("eslint .")
	tk.PrependExec("rm -fr lib/")
	tk.PrependSpawn("compile")
	tk.Spawn("package")

	assert.Equal(t, []Step{
		SpawnStep("compile"),
		ExecStep("rm -fr lib/"),
		ExecStep("jest"),
		ExecStep("eslint ."),
		SpawnStep("package"),
	}, tk.Steps())
}

func TestTask_StepsIsACopy(t *testing.T) {
	g := NewGraph()
	tk, err := g.AddTask("test", WithExec("jest"))
	require.NoError(t, err)

	steps := tk.Steps()
	steps[0] = ExecStep("changed")

	assert.Equal(t, []Step{ExecStep("jest")}, tk.Steps())
}

func TestStep_IsSpawn(t *testing.T) {
	assert.True(t, SpawnStep("compile").IsSpawn())
	assert.False(t, ExecStep("tsc").IsSpawn())
}

func TestParseCategory(t *testing.T) {
	for name, want := range map[string]Category{
		"build":    CategoryBuild,
		"test":     CategoryTest,
		"release":  CategoryRelease,
		"maintain": CategoryMaintain,
		"misc":     CategoryMisc,
		"":         CategoryMisc,
	} {
		got, err := ParseCategory(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseCategory("deploy")
	assert.ErrorContains(t, err, `unknown task category "deploy"`)
}
