package dag

// Graph is the spawn graph of a task set. Each node is a task name and an
// edge from A to B means B spawns A, so A must finish before B does. The
// graph is built and read by a single goroutine during synthesis and
// planning.
type Graph struct {
	nodes map[string]*node
}

// node is one task in the graph. Callers address nodes by name only.
type node struct {
	id string
	// deps are the tasks this task spawns.
	deps map[string]*node
	// dependents are the tasks that spawn this one.
	dependents map[string]*node
}
