// Package ignore writes the version-control and package ignore files from
// literal lines.
package ignore

import (
	"context"
	"path"
	"strings"

	"github.com/specialistvlad/projforge/internal/project"
	"github.com/specialistvlad/projforge/internal/registry"
)

// Artifact names.
const (
	GitIgnore = ".gitignore"
	NpmIgnore = ".npmignore"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the component with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterComponent("ignore", Synthesize)
}

// GitLines are the .gitignore entries: build output plus the user lines.
func GitLines(p *project.Project) []string {
	lines := []string{"node_modules/", dirEntry(p.Model.Project.LibDir), "dist/", "coverage/"}
	return append(lines, p.Model.Ignore...)
}

// NpmLines are the .npmignore entries: everything the published tarball
// must not carry.
func NpmLines(p *project.Project) []string {
	prj := p.Model.Project
	lines := []string{
		dirEntry(prj.SrcDir),
		dirEntry(prj.TestDir),
		dirEntry(path.Join(prj.LibDir, prj.TestDir)),
		"tsconfig.dev.json",
		".projforge/",
		"coverage/",
		"!*.d.ts",
	}
	return append(lines, p.Model.Ignore...)
}

func dirEntry(dir string) string {
	return "/" + strings.TrimSuffix(dir, "/") + "/"
}

func render(lines []string) []byte {
	var b strings.Builder
	b.WriteString("# Generated by projforge. Do not edit.\n")
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// Synthesize adds both ignore files.
func Synthesize(_ context.Context, p *project.Project) error {
	if err := p.AddFile(GitIgnore, render(GitLines(p))); err != nil {
		return err
	}
	return p.AddFile(NpmIgnore, render(NpmLines(p)))
}
