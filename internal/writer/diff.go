package writer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/specialistvlad/projforge/internal/ctxlog"
	"github.com/specialistvlad/projforge/internal/project"
)

var (
	diffHeader  = color.New(color.Bold).SprintFunc()
	diffHunk    = color.New(color.FgCyan).SprintFunc()
	diffAdded   = color.New(color.FgGreen).SprintFunc()
	diffRemoved = color.New(color.FgRed).SprintFunc()
)

// Diff writes a unified diff of every changed artifact to out without
// touching the filesystem.
func (w *Writer) Diff(ctx context.Context, out io.Writer, files []*project.File) ([]Result, error) {
	logger := ctxlog.FromContext(ctx)
	results := make([]Result, 0, len(files))

	for _, f := range files {
		change, old, err := w.classify(f)
		if err != nil {
			return results, err
		}
		results = append(results, Result{Path: f.Path, Change: change})
		if change == Unchanged {
			continue
		}
		text, err := renderUnifiedDiff(string(old), string(f.Content), f.Path, change == Created)
		if err != nil {
			return results, fmt.Errorf("failed to diff %s: %w", f.Path, err)
		}
		if _, err := io.WriteString(out, colorize(text)); err != nil {
			return results, err
		}
		logger.Debug("Artifact diffed.", "file", f.Path, "change", change.String())
	}
	return results, nil
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return difflib.SplitLines(strings.TrimSuffix(s, "\n"))
}

func renderUnifiedDiff(before, after, path string, created bool) (string, error) {
	from := "a/" + path
	if created {
		from = "/dev/null"
	}
	ud := difflib.UnifiedDiff{
		A:        splitLines(before),
		B:        splitLines(after),
		FromFile: from,
		ToFile:   "b/" + path,
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(ud)
}

// colorize paints a unified diff line by line. color.NoColor turns it into
// the identity.
func colorize(text string) string {
	lines := strings.SplitAfter(text, "\n")
	var b strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		body := strings.TrimSuffix(line, "\n")
		nl := line[len(body):]
		switch {
		case strings.HasPrefix(body, "---"), strings.HasPrefix(body, "+++"):
			body = diffHeader(body)
		case strings.HasPrefix(body, "@@"):
			body = diffHunk(body)
		case strings.HasPrefix(body, "+"):
			body = diffAdded(body)
		case strings.HasPrefix(body, "-"):
			body = diffRemoved(body)
		}
		b.WriteString(body)
		b.WriteString(nl)
	}
	return b.String()
}
