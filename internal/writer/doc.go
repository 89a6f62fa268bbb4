// Package writer persists synthesized artifacts through an afero.Fs, or
// renders what would change as a unified diff.
package writer
