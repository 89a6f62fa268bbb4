package dag

import (
	"fmt"

	"github.com/specialistvlad/projforge/internal/task"
)

// PlanStep is one exec step of a flattened task, attributed to the task
// that declares it.
type PlanStep struct {
	Task    string `json:"task" yaml:"task"`
	Command string `json:"command" yaml:"command"`
}

// FromTasks builds a graph with one node per task and an edge from every
// spawned task to its spawner. Spawning an unknown task, or the task itself,
// is an error.
func FromTasks(tasks *task.Graph) (*Graph, error) {
	g := New()
	for _, t := range tasks.Tasks() {
		g.AddNode(t.Name)
	}
	for _, t := range tasks.Tasks() {
		for _, s := range t.Steps() {
			if !s.IsSpawn() {
				continue
			}
			if s.Spawn == t.Name {
				return nil, fmt.Errorf("task %q spawns itself", t.Name)
			}
			if !g.Has(s.Spawn) {
				return nil, fmt.Errorf("task %q spawns unknown task %q", t.Name, s.Spawn)
			}
			if err := g.AddEdge(s.Spawn, t.Name); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Validate checks that every spawn resolves and that spawns form no cycle.
func Validate(tasks *task.Graph) error {
	g, err := FromTasks(tasks)
	if err != nil {
		return err
	}
	return g.DetectCycles()
}

// Plan flattens name into the exec steps a runner would perform, expanding
// spawns in place. A task spawned twice is expanded twice.
func Plan(tasks *task.Graph, name string) ([]PlanStep, error) {
	if _, ok := tasks.Task(name); !ok {
		return nil, fmt.Errorf("task %q not found", name)
	}
	if err := Validate(tasks); err != nil {
		return nil, err
	}

	var steps []PlanStep
	var expand func(name string)
	expand = func(name string) {
		t, _ := tasks.Task(name)
		for _, s := range t.Steps() {
			if s.IsSpawn() {
				expand(s.Spawn)
				continue
			}
			steps = append(steps, PlanStep{Task: name, Command: s.Exec})
		}
	}
	expand(name)
	return steps, nil
}
