package tsconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Options is the compilerOptions mapping of a fragment. Values are opaque:
// scalars, or one nested level of map[string]any / []any.
type Options map[string]any

// Fragment is one partial configuration contribution. Its JSON shape is the
// shape of the written artifact.
type Fragment struct {
	Include  []string `json:"include"`
	Exclude  []string `json:"exclude"`
	Options  Options  `json:"compilerOptions"`
	FileName string   `json:"-"`
}

// Empty returns a fragment with non-nil, empty fields.
func Empty() *Fragment {
	return &Fragment{
		Include: []string{},
		Exclude: []string{},
		Options: Options{},
	}
}

// Render serializes f as indented JSON with a trailing newline.
func Render(f *Fragment) ([]byte, error) {
	if f == nil {
		f = Empty()
	}
	out := *f
	if out.Include == nil {
		out.Include = []string{}
	}
	if out.Exclude == nil {
		out.Exclude = []string{}
	}
	if out.Options == nil {
		out.Options = Options{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(&out); err != nil {
		return nil, fmt.Errorf("failed to render tsconfig fragment: %w", err)
	}
	return buf.Bytes(), nil
}
