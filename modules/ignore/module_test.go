package ignore

import (
	"context"
	"testing"

	"github.com/specialistvlad/projforge/internal/config"
	"github.com/specialistvlad/projforge/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize(t *testing.T) {
	p := project.New(&config.Model{
		Project: config.NewProject("demo"),
		Ignore:  []string{"*.log", "*.log"},
	})
	require.NoError(t, Synthesize(context.Background(), p))

	git, ok := p.File(GitIgnore)
	require.True(t, ok)
	assert.Equal(t, `# Generated by projforge. Do not edit.
node_modules/
/lib/
dist/
coverage/
*.log
*.log
`, string(git.Content))

	npm, ok := p.File(NpmIgnore)
	require.True(t, ok)
	assert.Equal(t, `# Generated by projforge. Do not edit.
/src/
/test/
/lib/test/
tsconfig.dev.json
.projforge/
coverage/
!*.d.ts
*.log
*.log
`, string(npm.Content))
}

func TestDirEntry(t *testing.T) {
	assert.Equal(t, "/lib/", dirEntry("lib"))
	assert.Equal(t, "/lib/", dirEntry("lib/"))
	assert.Equal(t, "/out/js/", dirEntry("out/js"))
}
