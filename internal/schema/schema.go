// Package schema holds the gohcl decoding targets for project files.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// File is the top-level structure of a project file. Every block may appear
// in any file of the project directory.
type File struct {
	Projects  []*Project  `hcl:"project,block"`
	Jest      []*Jest     `hcl:"jest,block"`
	TSConfigs []*TSConfig `hcl:"tsconfig,block"`
	Tasks     []*Task     `hcl:"task,block"`
	Ignore    []string    `hcl:"ignore,optional"`
}

// Project represents the `project` block: layout and policy flags.
type Project struct {
	Name              string  `hcl:"name,label"`
	SrcDir            *string `hcl:"srcdir,optional"`
	TestDir           *string `hcl:"testdir,optional"`
	LibDir            *string `hcl:"libdir,optional"`
	CompileBeforeTest *bool   `hcl:"compile_before_test,optional"`
	Package           *bool   `hcl:"package,optional"`
}

// Jest represents the `jest` block.
type Jest struct {
	CompiledTests      *bool    `hcl:"compiled_tests,optional"`
	ColocatedSnapshots *bool    `hcl:"colocated_snapshots,optional"`
	Args               []string `hcl:"args,optional"`
}

// TSConfig represents a `tsconfig` block. The label selects the artifact the
// fragment contributes to.
type TSConfig struct {
	Target          string         `hcl:"target,label"`
	FileName        string         `hcl:"file_name,optional"`
	Include         []string       `hcl:"include,optional"`
	Exclude         []string       `hcl:"exclude,optional"`
	CompilerOptions hcl.Expression `hcl:"compiler_options,optional"`
}

// Task represents a user-defined `task` block.
type Task struct {
	Name        string  `hcl:"name,label"`
	Category    string  `hcl:"category,optional"`
	Description string  `hcl:"description,optional"`
	Steps       []*Step `hcl:"step,block"`
}

// Step represents a `step` block within a task.
type Step struct {
	Exec  string `hcl:"exec,optional"`
	Spawn string `hcl:"spawn,optional"`
}
