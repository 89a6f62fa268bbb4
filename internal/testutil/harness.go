// Package testutil provides a harness that runs the full application against
// project files held in an in-memory filesystem.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path"
	"sync"
	"testing"

	"github.com/specialistvlad/projforge/internal/app"
	"github.com/specialistvlad/projforge/internal/hcl"
	"github.com/specialistvlad/projforge/internal/registry"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// ProjectDir is where the harness places the project files.
const ProjectDir = "project"

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	Fs        afero.Fs
	App       *app.App
}

// Options tweak a harness run. The zero value synthesizes and writes.
type Options struct {
	DryRun  bool
	Modules []registry.Module
	// Act replaces app.Run, e.g. to list tasks or plan one.
	Act func(ctx context.Context, a *app.App) error
}

// RunIntegrationTest provides a standardized harness for running integration tests
// using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, opts Options) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, opts)
}

// RunIntegrationTestWithContext writes files below ProjectDir in a fresh
// in-memory filesystem and runs the app against it. File names are relative
// to ProjectDir.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, opts Options) *HarnessResult {
	t.Helper()

	fsys := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fsys, path.Join(ProjectDir, name), []byte(content), 0o644))
	}

	cfg, err := app.NewConfig(app.Config{
		ProjectPath: ProjectDir,
		DryRun:      opts.DryRun,
		LogLevel:    "debug",
		LogFormat:   "text",
	})
	require.NoError(t, err)

	out := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	testApp := app.NewApp(out, logBuffer, cfg, fsys, hcl.NewLoader(fsys), opts.Modules...)

	act := opts.Act
	if act == nil {
		act = func(ctx context.Context, a *app.App) error { return a.Run(ctx) }
	}
	runErr := act(ctx, testApp)

	if os.Getenv("PROJFORGE_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
		Fs:        fsys,
		App:       testApp,
	}
}
