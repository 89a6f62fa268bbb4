package task

import "fmt"

// DuplicateTaskError is returned when a task name is already taken.
type DuplicateTaskError struct {
	Name string
}

// Error implements the error interface for DuplicateTaskError.
func (e *DuplicateTaskError) Error() string {
	return fmt.Sprintf("duplicate task name: %q", e.Name)
}

// Graph is the set of tasks of one project. Spawn steps reference other
// tasks by name; the graph does not check those references.
type Graph struct {
	byName map[string]*Task
	order  []*Task
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{byName: make(map[string]*Task)}
}

// AddTask creates a task called name. It fails with *DuplicateTaskError if
// the graph already has one.
func (g *Graph) AddTask(name string, opts ...Option) (*Task, error) {
	if name == "" {
		return nil, fmt.Errorf("task name is required")
	}
	if _, exists := g.byName[name]; exists {
		return nil, &DuplicateTaskError{Name: name}
	}

	t := &Task{Name: name, Category: CategoryMisc}
	for _, opt := range opts {
		opt(t)
	}
	g.byName[name] = t
	g.order = append(g.order, t)
	return t, nil
}

// Task looks up a task by name.
func (g *Graph) Task(name string) (*Task, bool) {
	t, ok := g.byName[name]
	return t, ok
}

// Tasks returns all tasks in the order they were added.
func (g *Graph) Tasks() []*Task {
	out := make([]*Task, len(g.order))
	copy(out, g.order)
	return out
}

// Len returns the number of tasks.
func (g *Graph) Len() int {
	return len(g.order)
}
