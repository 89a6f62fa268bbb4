package project

import (
	"fmt"
	"path"
	"strings"

	"github.com/specialistvlad/projforge/internal/config"
	"github.com/specialistvlad/projforge/internal/snapshot"
	"github.com/specialistvlad/projforge/internal/task"
)

// ManifestPath is where the task manifest is rendered, relative to the
// output directory.
const ManifestPath = ".projforge/tasks.json"

// File is one synthesized artifact. Path is slash-separated and relative to
// the output directory.
type File struct {
	Path    string
	Content []byte
}

// DuplicateFileError reports two components claiming the same artifact path.
type DuplicateFileError struct {
	Path string
}

func (e *DuplicateFileError) Error() string {
	return fmt.Sprintf("duplicate file: %q", e.Path)
}

// Project is the mutable synthesis state. It is not safe for concurrent use.
type Project struct {
	Model *config.Model
	Tasks *task.Graph

	files []*File
	index map[string]int
}

// New creates a project for model with an empty task graph.
func New(model *config.Model) *Project {
	return &Project{
		Model: model,
		Tasks: task.NewGraph(),
		index: make(map[string]int),
	}
}

// Name returns the project name.
func (p *Project) Name() string {
	return p.Model.Project.Name
}

// Policy returns the compile/test ordering policy of the project.
func (p *Project) Policy() task.Policy {
	return task.PolicyFor(p.Model.Project.CompileBeforeTest)
}

// CompiledTestDir is where compiled tests land: <libdir>/<testdir>.
func (p *Project) CompiledTestDir() string {
	return path.Join(p.Model.Project.LibDir, p.Model.Project.TestDir)
}

// SnapshotRoots returns the roots the snapshot resolver remaps between.
func (p *Project) SnapshotRoots() snapshot.Roots {
	return snapshot.CommonRoots(p.Model.Project.TestDir, p.CompiledTestDir())
}

// AddFile registers an artifact. The path is cleaned; an absolute path, one
// escaping the output directory, or one already registered is an error.
func (p *Project) AddFile(filePath string, content []byte) error {
	clean := path.Clean(filePath)
	if filePath == "" || clean == "." || path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("invalid file path %q", filePath)
	}
	if _, exists := p.index[clean]; exists {
		return &DuplicateFileError{Path: clean}
	}
	p.index[clean] = len(p.files)
	p.files = append(p.files, &File{Path: clean, Content: content})
	return nil
}

// File returns the artifact registered at filePath.
func (p *Project) File(filePath string) (*File, bool) {
	i, ok := p.index[path.Clean(filePath)]
	if !ok {
		return nil, false
	}
	return p.files[i], true
}

// Files returns the artifacts in registration order.
func (p *Project) Files() []*File {
	out := make([]*File, len(p.files))
	copy(out, p.files)
	return out
}

// RenderManifest adds the task manifest as the last artifact.
func (p *Project) RenderManifest() error {
	data, err := task.RenderManifest(p.Tasks)
	if err != nil {
		return fmt.Errorf("failed to render task manifest: %w", err)
	}
	return p.AddFile(ManifestPath, data)
}
