package writer

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/projforge/internal/ctxlog"
	"github.com/specialistvlad/projforge/internal/project"
	"github.com/spf13/afero"
)

// Change classifies what writing a file does to the output directory.
type Change int

const (
	Unchanged Change = iota
	Created
	Updated
)

func (c Change) String() string {
	switch c {
	case Unchanged:
		return "unchanged"
	case Created:
		return "created"
	case Updated:
		return "updated"
	default:
		return fmt.Sprintf("Change(%d)", int(c))
	}
}

// Result is the outcome for one artifact.
type Result struct {
	Path   string
	Change Change
}

// Writer writes artifacts below root.
type Writer struct {
	fs   afero.Fs
	root string
}

// New creates a writer for the output directory root on fsys.
func New(fsys afero.Fs, root string) *Writer {
	return &Writer{fs: fsys, root: root}
}

func (w *Writer) target(p string) string {
	return filepath.Join(w.root, filepath.FromSlash(p))
}

// current returns the existing content of an artifact, or nil with
// exists=false when it is absent.
func (w *Writer) current(p string) (content []byte, exists bool, err error) {
	data, err := afero.ReadFile(w.fs, w.target(p))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", p, err)
	}
	return data, true, nil
}

func (w *Writer) classify(f *project.File) (Change, []byte, error) {
	old, exists, err := w.current(f.Path)
	if err != nil {
		return Unchanged, nil, err
	}
	switch {
	case !exists:
		return Created, nil, nil
	case bytes.Equal(old, f.Content):
		return Unchanged, old, nil
	default:
		return Updated, old, nil
	}
}

// Write persists every changed artifact. Unchanged files are not touched.
func (w *Writer) Write(ctx context.Context, files []*project.File) ([]Result, error) {
	logger := ctxlog.FromContext(ctx)
	results := make([]Result, 0, len(files))

	for _, f := range files {
		change, _, err := w.classify(f)
		if err != nil {
			return results, err
		}
		if change != Unchanged {
			dst := w.target(f.Path)
			if err := w.fs.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
				return results, fmt.Errorf("failed to create directory for %s: %w", f.Path, err)
			}
			if err := afero.WriteFile(w.fs, dst, f.Content, 0o644); err != nil {
				return results, fmt.Errorf("failed to write %s: %w", f.Path, err)
			}
			logger.Info("Artifact written.", "file", f.Path, "change", change.String())
		} else {
			logger.Debug("Artifact unchanged.", "file", f.Path)
		}
		results = append(results, Result{Path: f.Path, Change: change})
	}
	return results, nil
}
