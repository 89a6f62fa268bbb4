package task

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TaskSpec is the serialized form of a task handed to the runner.
type TaskSpec struct {
	Name        string   `json:"name" yaml:"name"`
	Category    Category `json:"category,omitempty" yaml:"category,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Steps       []Step   `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// Manifest is the serialized task graph.
type Manifest struct {
	Tasks map[string]TaskSpec `json:"tasks" yaml:"tasks"`
}

// Spec returns the serialized form of t.
func (t *Task) Spec() TaskSpec {
	return TaskSpec{
		Name:        t.Name,
		Category:    t.Category,
		Description: t.Description,
		Steps:       t.Steps(),
	}
}

// NewManifest captures every task in g.
func NewManifest(g *Graph) *Manifest {
	m := &Manifest{Tasks: make(map[string]TaskSpec, g.Len())}
	for _, t := range g.Tasks() {
		m.Tasks[t.Name] = t.Spec()
	}
	return m
}

// RenderManifest serializes g as indented JSON with a trailing newline.
func RenderManifest(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(NewManifest(g)); err != nil {
		return nil, fmt.Errorf("failed to render task manifest: %w", err)
	}
	return buf.Bytes(), nil
}
