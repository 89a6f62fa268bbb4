package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/specialistvlad/projforge/internal/dag"
	"github.com/specialistvlad/projforge/internal/task"
	"gopkg.in/yaml.v3"
)

// ListTasks synthesizes the project and prints its tasks in format.
func (a *App) ListTasks(ctx context.Context, format string) error {
	p, err := a.Synthesize(ctx)
	if err != nil {
		return err
	}
	manifest := task.NewManifest(p.Tasks)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(a.outW)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(manifest)
	case FormatYAML:
		enc := yaml.NewEncoder(a.outW)
		enc.SetIndent(2)
		if err := enc.Encode(manifest); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		return a.writeTaskTable(manifest)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// writeTaskTable prints one row per task ordered by category, then name.
func (a *App) writeTaskTable(m *task.Manifest) error {
	specs := make([]task.TaskSpec, 0, len(m.Tasks))
	for _, s := range m.Tasks {
		specs = append(specs, s)
	}
	sort.Slice(specs, func(i, j int) bool {
		if specs[i].Category != specs[j].Category {
			return specs[i].Category < specs[j].Category
		}
		return specs[i].Name < specs[j].Name
	})

	tw := tabwriter.NewWriter(a.outW, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCATEGORY\tDESCRIPTION")
	for _, s := range specs {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, s.Category, s.Description)
	}
	return tw.Flush()
}

// Plan synthesizes the project and prints the exec steps of name with
// spawns expanded.
func (a *App) Plan(ctx context.Context, name string) error {
	p, err := a.Synthesize(ctx)
	if err != nil {
		return err
	}
	steps, err := dag.Plan(p.Tasks, name)
	if err != nil {
		return err
	}
	for i, s := range steps {
		if _, err := fmt.Fprintf(a.outW, "%d. [%s] %s\n", i+1, s.Task, s.Command); err != nil {
			return err
		}
	}
	return nil
}
