// Package cli turns command-line arguments and PROJFORGE_* environment
// variables into an Invocation for the application.
package cli
