package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/projforge/internal/config"
	"github.com/specialistvlad/projforge/internal/ctxlog"
	"github.com/specialistvlad/projforge/internal/fsutil"
	"github.com/specialistvlad/projforge/internal/schema"
	"github.com/spf13/afero"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	fs        afero.Fs
	converter *Converter
}

// NewLoader creates a new HCL project loader reading from fsys.
func NewLoader(fsys afero.Fs) *Loader {
	return &Loader{fs: fsys, converter: NewConverter()}
}

// Load parses every .hcl file found under paths, in lexical order per path,
// and merges the blocks into one model. Exactly one project block must exist
// across all files and at most one jest block.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	var files []string
	seen := make(map[string]struct{})
	for _, p := range paths {
		found, err := fsutil.FindFilesByExtension(l.fs, p, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", p, err)
		}
		for _, f := range found {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			files = append(files, f)
		}
	}
	logger.Debug("Discovered HCL files.", "count", len(files))
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl files found in %v", paths)
	}

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		src, err := afero.ReadFile(l.fs, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		hclFile, diags := parser.ParseHCL(src, file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.File
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if err := l.translateFile(ctx, model, &root, file); err != nil {
			return nil, err
		}
		logger.Debug("Loaded HCL file.", "file", file)
	}

	if model.Project == nil {
		return nil, fmt.Errorf("no project block found in %v", paths)
	}
	if model.Jest == nil {
		model.Jest = &config.Jest{}
	}
	if err := model.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("HCL loading complete.",
		"project", model.Project.Name,
		"fragments", len(model.Fragments),
		"tasks", len(model.Tasks),
	)
	return model, nil
}
