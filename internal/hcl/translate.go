// This file contains the logic for translating decoded HCL schema structs
// into the format-agnostic project model.

package hcl

import (
	"context"
	"fmt"

	"github.com/specialistvlad/projforge/internal/config"
	"github.com/specialistvlad/projforge/internal/ctxlog"
	"github.com/specialistvlad/projforge/internal/schema"
)

// translateFile merges the blocks of one decoded file into model.
func (l *Loader) translateFile(ctx context.Context, model *config.Model, root *schema.File, file string) error {
	for _, p := range root.Projects {
		if model.Project != nil {
			return fmt.Errorf("%s: duplicate project block %q (already defined as %q)", file, p.Name, model.Project.Name)
		}
		model.Project = translateProject(p)
	}

	for _, j := range root.Jest {
		if model.Jest != nil {
			return fmt.Errorf("%s: duplicate jest block", file)
		}
		model.Jest = translateJest(j)
	}

	for _, ts := range root.TSConfigs {
		frag, err := l.translateTSConfig(ctx, ts)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		model.Fragments = append(model.Fragments, frag)
	}

	for _, t := range root.Tasks {
		def, err := translateTask(t)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		model.Tasks = append(model.Tasks, def)
	}

	model.Ignore = append(model.Ignore, root.Ignore...)
	return nil
}

// translateProject applies the defaults for every attribute left unset.
func translateProject(p *schema.Project) *config.Project {
	out := config.NewProject(p.Name)
	if p.SrcDir != nil {
		out.SrcDir = *p.SrcDir
	}
	if p.TestDir != nil {
		out.TestDir = *p.TestDir
	}
	if p.LibDir != nil {
		out.LibDir = *p.LibDir
	}
	if p.CompileBeforeTest != nil {
		out.CompileBeforeTest = *p.CompileBeforeTest
	}
	if p.Package != nil {
		out.Package = *p.Package
	}
	return out
}

func translateJest(j *schema.Jest) *config.Jest {
	out := &config.Jest{Args: j.Args}
	if j.CompiledTests != nil {
		out.CompiledTests = *j.CompiledTests
	}
	if j.ColocatedSnapshots != nil {
		out.ColocatedSnapshots = *j.ColocatedSnapshots
	}
	return out
}

// translateTSConfig evaluates compiler_options without variables or
// functions and validates the globs.
func (l *Loader) translateTSConfig(ctx context.Context, ts *schema.TSConfig) (*config.Fragment, error) {
	logger := ctxlog.FromContext(ctx)

	if err := validateGlobs(ts.Include); err != nil {
		return nil, fmt.Errorf("tsconfig %q include: %w", ts.Target, err)
	}
	if err := validateGlobs(ts.Exclude); err != nil {
		return nil, fmt.Errorf("tsconfig %q exclude: %w", ts.Target, err)
	}

	options := map[string]any{}
	if ts.CompilerOptions != nil {
		val, diags := ts.CompilerOptions.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("tsconfig %q: invalid compiler_options: %w", ts.Target, diags)
		}
		var err error
		options, err = l.converter.ToOptions(val)
		if err != nil {
			return nil, fmt.Errorf("tsconfig %q: %w", ts.Target, err)
		}
	}
	logger.Debug("Translated tsconfig fragment.", "target", ts.Target, "options", len(options))

	return &config.Fragment{
		Target:   ts.Target,
		FileName: ts.FileName,
		Include:  ts.Include,
		Exclude:  ts.Exclude,
		Options:  options,
	}, nil
}

func translateTask(t *schema.Task) (*config.TaskDefinition, error) {
	def := &config.TaskDefinition{
		Name:        t.Name,
		Category:    t.Category,
		Description: t.Description,
	}
	for i, s := range t.Steps {
		if s.Exec != "" {
			if err := validateCommand(s.Exec); err != nil {
				return nil, fmt.Errorf("task %q, step %d: %w", t.Name, i, err)
			}
		}
		def.Steps = append(def.Steps, config.StepDefinition{Exec: s.Exec, Spawn: s.Spawn})
	}
	return def, nil
}
