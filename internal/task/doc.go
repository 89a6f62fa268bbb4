// Package task assembles the named tasks a project hands to its task runner.
//
// A Task is an ordered list of steps. Each step either runs a literal shell
// command (Exec) or spawns another task by name (Spawn). Tasks live in a
// Graph that keeps insertion order and rejects duplicate names. The package
// never executes anything, resolves spawns, or checks the spawn graph for
// cycles; that is the runner's job.
//
// The order of the compile and test spawns inside the build task is decided
// by a Policy, resolved once when the project is synthesized.
package task
