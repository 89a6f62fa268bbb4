package hcl

import (
	"fmt"

	"github.com/mattn/go-shellwords"
	"github.com/moby/patternmatcher"
)

// validateGlobs rejects patterns that cannot be compiled. Order and
// duplicates are left alone.
func validateGlobs(globs []string) error {
	if len(globs) == 0 {
		return nil
	}
	for _, g := range globs {
		if g == "" {
			return fmt.Errorf("empty glob")
		}
	}
	if _, err := patternmatcher.New(globs); err != nil {
		return fmt.Errorf("invalid glob: %w", err)
	}
	return nil
}

// validateCommand rejects exec steps a shell could not split into words,
// such as unterminated quotes.
func validateCommand(command string) error {
	args, err := shellwords.Parse(command)
	if err != nil {
		return fmt.Errorf("parse exec %q: %w", command, err)
	}
	if len(args) == 0 {
		return fmt.Errorf("exec %q has no command", command)
	}
	return nil
}
