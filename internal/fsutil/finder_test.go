package fsutil

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	fsys := afero.NewMemMapFs()
	for _, name := range []string{
		"proj/b.hcl",
		"proj/a.hcl",
		"proj/nested/c.hcl",
		"proj/readme.md",
		"proj/nested/d.hcl.bak",
	} {
		require.NoError(t, afero.WriteFile(fsys, name, []byte("x"), 0o644))
	}

	files, err := FindFilesByExtension(fsys, "proj", ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{"proj/a.hcl", "proj/b.hcl", "proj/nested/c.hcl"}, files)
}

func TestFindFilesByExtension_SingleFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "proj/main.hcl", []byte("x"), 0o644))

	files, err := FindFilesByExtension(fsys, "proj/main.hcl", ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{"proj/main.hcl"}, files)

	files, err = FindFilesByExtension(fsys, "proj/main.hcl", ".json")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFindFilesByExtension_MissingRoot(t *testing.T) {
	files, err := FindFilesByExtension(afero.NewMemMapFs(), "nowhere", ".hcl")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFindFilesByExtension_EmptyExtensionPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = FindFilesByExtension(afero.NewMemMapFs(), ".", "")
	})
}
