// Package dag builds a dependency graph over the spawn edges of a task graph
// and flattens a task into the exec steps a runner would perform.
package dag
