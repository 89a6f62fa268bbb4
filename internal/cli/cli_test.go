package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/projforge/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected *Invocation
	}{
		{
			name: "positional path with defaults",
			args: []string{"./proj"},
			expected: &Invocation{
				Command: CommandSynth,
				Config: &app.Config{
					ProjectPath: "./proj",
					OutDir:      "./proj",
					LogLevel:    "info",
					LogFormat:   "text",
				},
			},
		},
		{
			name: "all synth flags",
			args: []string{"--project=proj/main.hcl", "--out", "build", "--dry-run", "--log-level=DEBUG", "--log-format", "json"},
			expected: &Invocation{
				Command: CommandSynth,
				Config: &app.Config{
					ProjectPath: "proj/main.hcl",
					OutDir:      "build",
					DryRun:      true,
					LogLevel:    "debug",
					LogFormat:   "json",
				},
			},
		},
		{
			name: "single file defaults out to its directory",
			args: []string{"-p", "proj/main.hcl"},
			expected: &Invocation{
				Command: CommandSynth,
				Config: &app.Config{
					ProjectPath: "proj/main.hcl",
					OutDir:      "proj",
					LogLevel:    "info",
					LogFormat:   "text",
				},
			},
		},
		{
			name: "tasks as yaml",
			args: []string{"tasks", "proj", "-o", "yaml"},
			expected: &Invocation{
				Command: CommandTasks,
				Format:  app.FormatYAML,
				Config: &app.Config{
					ProjectPath: "proj",
					OutDir:      "proj",
					LogLevel:    "info",
					LogFormat:   "text",
				},
			},
		},
		{
			name: "plan with persistent flag after the subcommand",
			args: []string{"plan", "build", "proj", "--log-level", "warn"},
			expected: &Invocation{
				Command: CommandPlan,
				Task:    "build",
				Config: &app.Config{
					ProjectPath: "proj",
					OutDir:      "proj",
					LogLevel:    "warn",
					LogFormat:   "text",
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			inv, shouldExit, err := Parse(tc.args, &bytes.Buffer{})
			require.NoError(t, err)
			assert.False(t, shouldExit)
			if diff := cmp.Diff(tc.expected, inv); diff != "" {
				t.Errorf("invocation mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"--this-is-not-a-valid-flag"}, "unknown flag: --this-is-not-a-valid-flag"},
		{"bad log level", []string{"proj", "--log-level=verbose"}, "invalid log-level"},
		{"bad log format", []string{"proj", "--log-format=xml"}, "invalid log-format"},
		{"bad tasks format", []string{"tasks", "proj", "-o", "toml"}, "invalid output"},
		{"too many paths", []string{"a", "b"}, "accepts at most 1 arg(s)"},
		{"plan without task", []string{"plan"}, "accepts between 1 and 2 arg(s)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			inv, shouldExit, err := Parse(tc.args, &bytes.Buffer{})
			require.Error(t, err)
			assert.Nil(t, inv)
			assert.False(t, shouldExit)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.want)
		})
	}
}

func TestParse_Help(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {"--help"}, {"tasks", "--help"}} {
		out := &bytes.Buffer{}
		inv, shouldExit, err := Parse(args, out)
		require.NoError(t, err)
		assert.True(t, shouldExit)
		assert.Nil(t, inv)
		assert.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_NoPathPrintsUsage(t *testing.T) {
	out := &bytes.Buffer{}
	inv, shouldExit, err := Parse([]string{}, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, inv)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "--dry-run")
}

func TestParse_EnvironmentFillsUnsetFlags(t *testing.T) {
	t.Setenv("PROJFORGE_PROJECT", "env-proj")
	t.Setenv("PROJFORGE_LOG_LEVEL", "debug")
	t.Setenv("PROJFORGE_DRY_RUN", "true")
	t.Setenv("PROJFORGE_LOG_FORMAT", "json")

	inv, _, err := Parse([]string{"--log-format=text"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, &app.Config{
		ProjectPath: "env-proj",
		OutDir:      "env-proj",
		DryRun:      true,
		LogLevel:    "debug",
		LogFormat:   "text", // the explicit flag wins
	}, inv.Config)
}

func TestParse_EnvironmentInvalidValue(t *testing.T) {
	t.Setenv("PROJFORGE_DRY_RUN", "perhaps")

	_, _, err := Parse([]string{"proj"}, &bytes.Buffer{})
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "invalid PROJFORGE_DRY_RUN")
}
