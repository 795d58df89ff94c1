// cmd/libman/helpers.go
// This file contains the output rendering helpers shared by the
// subcommands. All user-facing text is written here or in commands.go;
// the core packages never print.
package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/aoideee/libman/internal/data"
)

// formatBook renders one record as the pipe-separated catalog line used
// by every listing command.
func formatBook(b data.Book) string {
	return fmt.Sprintf("%s | %s | %s | %d | %s", b.ID, b.Title, b.Author, b.Year, b.Status)
}

// renderBooks prints one catalog line per record, in the order the store
// returned them.
func renderBooks(out io.Writer, books []data.Book) {
	for _, b := range books {
		fmt.Fprintln(out, formatBook(b))
	}
}

// renderValidationError prints the failed fields one per line in
// alphabetical order, so the output is stable for tests and scripts.
func renderValidationError(out io.Writer, vErr *data.ValidationError) {
	fmt.Fprintln(out, "Validation error. The arguments passed do not meet the requirements:")

	fields := make([]string, 0, len(vErr.Fields))
	for field := range vErr.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		fmt.Fprintf(out, "  %s: %s\n", field, vErr.Fields[field])
	}
}
