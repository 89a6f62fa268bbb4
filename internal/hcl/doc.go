// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for file discovery, HCL parsing, validation
// of user-authored globs and commands, and cty-to-Go conversion of opaque
// compiler options.
package hcl
