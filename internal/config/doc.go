// Package config defines the format-agnostic project model, along with the
// Loader interface for reading it from a concrete source.
//
// The `config.Model` is the single source of truth for the `project` package
// and the components under `modules/`. Concrete loaders, such as the HCL one,
// live in separate packages.
package config
