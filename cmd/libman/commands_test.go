package main

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI runs one full command invocation against the catalog at file,
// the way a user would: a fresh process builds a fresh command tree and
// reloads the store from disk.
func runCLI(t *testing.T, file string, args ...string) string {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--file", file}, args...))

	require.NoError(t, cmd.Execute())
	return out.String()
}

// addBook adds a book and returns the id printed by the add command.
func addBook(t *testing.T, file, title, author, year string) string {
	t.Helper()

	out := runCLI(t, file, "add", title, author, year)
	require.Contains(t, out, "successfully added with id = ")

	_, id, _ := strings.Cut(out, "id = ")
	return strings.TrimSpace(id)
}

func testCatalog(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "library.json")
}

func TestAddAndList(t *testing.T) {
	file := testCatalog(t)

	assert.Equal(t, "The library is empty.\n", runCLI(t, file, "list"))

	addBook(t, file, "Тёмные аллеи", "Бунин Иван Алексеевич", "1937")
	addBook(t, file, "1984", "George Orwell", "1949")

	out := runCLI(t, file, "list")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	// Sorted by title: "1984" before the Cyrillic title.
	assert.Contains(t, lines[0], "1984 | George Orwell | 1949 | в наличии")
	assert.Contains(t, lines[1], "Тёмные аллеи | Бунин Иван Алексеевич | 1937 | в наличии")
}

func TestAddValidationError(t *testing.T) {
	file := testCatalog(t)

	out := runCLI(t, file, "add", "Цифры в имени автора", "Бунин Иван Алексеевич123", "1937")
	assert.Contains(t, out, "Validation error. The arguments passed do not meet the requirements:")
	assert.Contains(t, out, "author:")

	assert.Equal(t, "The library is empty.\n", runCLI(t, file, "list"))
}

func TestAddNonNumericYear(t *testing.T) {
	file := testCatalog(t)

	out := runCLI(t, file, "add", "Книга", "Автор", "какой-то год")
	assert.Contains(t, out, "Validation error.")
	assert.Contains(t, out, "year: must be a number")
}

func TestFindByName(t *testing.T) {
	file := testCatalog(t)
	addBook(t, file, "Природа", "Первый Автор", "1000")
	addBook(t, file, "Разнообразная природа России", "Второй Автор", "2002")
	addBook(t, file, "Просто книга", "Просто автор", "300")

	out := runCLI(t, file, "find-by-name", "Природа")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 2)

	out = runCLI(t, file, "find-by-name", "Гербарий")
	assert.Equal(t, "No books with the word 'Гербарий' in their title were found.\n", out)
}

func TestFindByAuthor(t *testing.T) {
	file := testCatalog(t)
	addBook(t, file, "Азбука", "Пушкин", "1000")
	addBook(t, file, "Энциклопедия", "Пушкин, Есенин", "2001")

	out := runCLI(t, file, "find-by-author", "Пушкин")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 2)

	out = runCLI(t, file, "find-by-author", "Евклид")
	assert.Equal(t, "Books by the author 'Евклид' have not been found.\n", out)
}

func TestFindByYear(t *testing.T) {
	file := testCatalog(t)
	addBook(t, file, "Азбука", "Онегин", "1111")
	addBook(t, file, "Букварь", "Онегин", "2222")

	out := runCLI(t, file, "find-by-year", "1111")
	assert.Contains(t, out, "Азбука")
	assert.NotContains(t, out, "Букварь")

	out = runCLI(t, file, "find-by-year", "3333")
	assert.Equal(t, "No books with the year '3333' could be found.\n", out)

	out = runCLI(t, file, "find-by-year", "какой-то год")
	assert.Equal(t, "Invalid parameter type. The year must be a number.\n", out)
}

func TestFindByID(t *testing.T) {
	file := testCatalog(t)
	id := addBook(t, file, "Книга для поиска по id", "Автор", "1000")

	out := runCLI(t, file, "find-by-id", id)
	assert.Contains(t, out, id+" | Книга для поиска по id | Автор | 1000 | в наличии")

	out = runCLI(t, file, "find-by-id", "1")
	assert.Equal(t, "The book with id '1' could not be found.\n", out)
}

func TestDelete(t *testing.T) {
	file := testCatalog(t)
	id := addBook(t, file, "Книга для удаления", "Автор", "1000")

	out := runCLI(t, file, "delete", id)
	assert.Contains(t, out, "has been successfully deleted")

	out = runCLI(t, file, "find-by-id", id)
	assert.Contains(t, out, "could not be found")

	out = runCLI(t, file, "delete", "1")
	assert.Equal(t, "The book with the ID \"1\" does not exist.\n", out)
}

func TestGetAndReturn(t *testing.T) {
	file := testCatalog(t)
	id := addBook(t, file, "Азбука", "Пушкин", "1000")

	out := runCLI(t, file, "get", id)
	assert.Contains(t, out, "successfully issued")
	assert.Contains(t, out, "выдана")

	// Issuing an already issued book is rejected by the pre-check.
	out = runCLI(t, file, "get", id)
	assert.Contains(t, out, "is not available now")

	out = runCLI(t, file, "return", id)
	assert.Contains(t, out, "successfully accepted")
	assert.Contains(t, out, "в наличии")

	out = runCLI(t, file, "list")
	assert.Contains(t, out, "в наличии")
}

func TestGetUnknownID(t *testing.T) {
	file := testCatalog(t)

	out := runCLI(t, file, "get", "1")
	assert.Equal(t, "The book with the ID \"1\" does not exist.\n", out)
}

func TestReturnUnknownID(t *testing.T) {
	file := testCatalog(t)

	out := runCLI(t, file, "return", "1")
	assert.Contains(t, out, "does not belong to this library")
}

func TestCatalogPersistsAcrossInvocations(t *testing.T) {
	file := testCatalog(t)
	id := addBook(t, file, "Мертвые души", "Гоголь Николай Васильевич", "1842")

	// Each runCLI call reloads the catalog from disk, so finding the
	// book here proves the add was flushed.
	out := runCLI(t, file, "find-by-id", id)
	assert.Contains(t, out, "Мертвые души")
}
