// cmd/libman/commands.go
// This file contains every subcommand of the CLI. Each command parses its
// positional arguments, invokes one record store operation, and renders
// the result as lines of text. Domain outcomes like "not found" or a
// validation failure are rendered as messages and do not fail the
// process; only infrastructure errors (unreadable catalog, failed save)
// propagate and produce a non-zero exit.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aoideee/libman/internal/data"
)

// addCmd creates a new book record.
func (app *application) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add TITLE AUTHOR YEAR",
		Short: "Add a new book to the library",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			year, err := data.ParseYear(args[2])
			if err != nil {
				// A non-numeric year is a field problem, rendered the same
				// way as any other creation constraint violation.
				renderValidationError(out, &data.ValidationError{
					Fields: map[string]string{"year": "must be a number"},
				})
				return nil
			}

			book, err := app.store.Create(data.CreateBookInput{
				Title:  args[0],
				Author: args[1],
				Year:   year,
			}, data.Flush)

			var vErr *data.ValidationError
			if errors.As(err, &vErr) {
				renderValidationError(out, vErr)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "The book %q successfully added with id = %s\n", book.Title, book.ID)
			return nil
		},
	}
}

// listCmd prints every book sorted by title, author, and id.
func (app *application) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"list-books"},
		Short:   "Get a sorted list of all books in the library",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			books := app.store.ListAll()
			if len(books) == 0 {
				fmt.Fprintln(out, "The library is empty.")
				return nil
			}
			renderBooks(out, books)
			return nil
		},
	}
}

// findByNameCmd searches titles for a substring.
func (app *application) findByNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find-by-name NAME",
		Short: "Get a list of books whose title contains the given substring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			books := app.store.FindByTitle(args[0])
			if len(books) == 0 {
				fmt.Fprintf(out, "No books with the word '%s' in their title were found.\n", args[0])
				return nil
			}
			renderBooks(out, books)
			return nil
		},
	}
}

// findByAuthorCmd searches authors for a substring.
func (app *application) findByAuthorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find-by-author AUTHOR",
		Short: "Get a sorted list of books whose author contains the given substring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			books := app.store.FindByAuthor(args[0])
			if len(books) == 0 {
				fmt.Fprintf(out, "Books by the author '%s' have not been found.\n", args[0])
				return nil
			}
			renderBooks(out, books)
			return nil
		},
	}
}

// findByYearCmd searches for an exact publication year.
func (app *application) findByYearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find-by-year YEAR",
		Short: "Get a sorted list of books published in the given year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			year, err := data.ParseYear(args[0])
			if err != nil {
				fmt.Fprintln(out, "Invalid parameter type. The year must be a number.")
				return nil
			}

			books := app.store.FindByYear(year)
			if len(books) == 0 {
				fmt.Fprintf(out, "No books with the year '%s' could be found.\n", args[0])
				return nil
			}
			renderBooks(out, books)
			return nil
		},
	}
}

// findByIDCmd looks up a single book by its id.
func (app *application) findByIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find-by-id ID",
		Short: "Get information about a book by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			book, found := app.store.FindByID(args[0])
			if !found {
				fmt.Fprintf(out, "The book with id '%s' could not be found.\n", args[0])
				return nil
			}
			fmt.Fprintln(out, formatBook(book))
			return nil
		},
	}
}

// deleteCmd removes a book by id.
func (app *application) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a book by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			err := app.store.Delete(args[0], data.Flush)
			if errors.Is(err, data.ErrBookNotFound) {
				fmt.Fprintf(out, "The book with the ID %q does not exist.\n", args[0])
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "The book with id %q has been successfully deleted.\n", args[0])
			return nil
		},
	}
}

// getCmd checks a book out of the library, setting its status to issued.
// The availability pre-check lives here: the store itself applies status
// changes unconditionally.
func (app *application) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Take a book from the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			book, found := app.store.FindByID(args[0])
			if !found {
				fmt.Fprintf(out, "The book with the ID %q does not exist.\n", args[0])
				return nil
			}
			if book.Status == data.StatusIssued {
				fmt.Fprintf(out, "The book with id %q is not available now\n", args[0])
				return nil
			}

			// book.ID is the canonical id: the lookup above ignores case,
			// the status update matches exactly.
			if err := app.store.UpdateStatus(book.ID, data.StatusIssued, data.Flush); err != nil {
				return err
			}
			fmt.Fprintf(out, "The book with id %q has been successfully issued. The status of the book has been changed to %q.\n",
				args[0], string(data.StatusIssued))
			return nil
		},
	}
}

// returnCmd returns a book to the library, setting its status back to
// available. The status change is an unconditional overwrite; returning a
// book that was never issued is not an error.
func (app *application) returnCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "return ID",
		Aliases: []string{"return-book"},
		Short:   "Return a book to the library",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			err := app.store.UpdateStatus(args[0], data.StatusAvailable, data.Flush)
			if errors.Is(err, data.ErrBookNotFound) {
				fmt.Fprintf(out, "The book with id %q does not belong to this library. If you want to transfer this book to this library, use the \"add\" command\n", args[0])
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "The book with id %q has been successfully accepted. The status of the book has been changed to %q.\n",
				args[0], string(data.StatusAvailable))
			return nil
		},
	}
}
