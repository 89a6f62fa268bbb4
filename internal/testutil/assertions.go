package testutil

import (
	"encoding/json"
	"path"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// ReadArtifact returns the content of an artifact written below ProjectDir.
func ReadArtifact(t *testing.T, result *HarnessResult, name string) string {
	t.Helper()
	data, err := afero.ReadFile(result.Fs, path.Join(ProjectDir, name))
	require.NoError(t, err, "artifact %s was not written", name)
	return string(data)
}

// DecodeArtifact unmarshals a JSON artifact written below ProjectDir.
func DecodeArtifact(t *testing.T, result *HarnessResult, name string, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(ReadArtifact(t, result, name)), v))
}

// AssertNoArtifact checks that nothing was written at name.
func AssertNoArtifact(t *testing.T, result *HarnessResult, name string) {
	t.Helper()
	exists, err := afero.Exists(result.Fs, path.Join(ProjectDir, name))
	require.NoError(t, err)
	require.False(t, exists, "artifact %s should not exist", name)
}

// AssertLogged checks the captured logs for a substring.
func AssertLogged(t *testing.T, result *HarnessResult, substr string) {
	t.Helper()
	require.True(t,
		strings.Contains(result.LogOutput, substr),
		"expected log output to contain %q", substr,
	)
}
