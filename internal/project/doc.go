// Package project holds the in-memory state of one synthesis run: the loaded
// model, the task graph every component contributes to, and the ordered set
// of artifacts that will be handed to the writer.
package project
