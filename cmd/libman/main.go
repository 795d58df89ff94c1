// Package main is the entry point for the libman command-line catalog
// manager. It wires together configuration, the persistence adapter, and
// the record store, then dispatches to one of the cobra subcommands.
package main

import "os"

// appVersion is the current version of the CLI, shown by --version.
const appVersion = "1.0.0"

// main builds the command tree and runs it. Usage and flag errors are
// printed by cobra; a non-nil error means the invocation failed and the
// process exits non-zero.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
