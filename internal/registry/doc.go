// Package registry provides the central "glue" for the component system.
//
// Every module compiled into the binary registers one or more synthesis
// components with the Registry. The registry preserves registration order,
// which is the order components contribute fragments, tasks and files to a
// project.
package registry
