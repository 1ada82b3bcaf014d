// Package console implements the interactive menu shell over a catalog.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/LongerDude/Library-Management-System/internal/catalog"
)

// Shell drives the menu loop. The catalog is injected so that tests and
// other entry points can supply their own instance; there is no
// package-level state.
type Shell struct {
	catalog *catalog.Catalog
	in      *bufio.Scanner
	out     io.Writer
}

// NewShell wires a shell to a catalog and an input/output pair.
func NewShell(c *catalog.Catalog, in io.Reader, out io.Writer) *Shell {
	return &Shell{catalog: c, in: bufio.NewScanner(in), out: out}
}

// Run executes the menu loop until the user exits or input runs out.
func (s *Shell) Run() {
	fmt.Fprintln(s.out, "Welcome to the Library software!")

	for {
		choice, ok := s.menuChoice()
		if !ok {
			return
		}

		switch choice {
		case 1:
			if !s.addBook() {
				return
			}
		case 2:
			if !s.transact("borrow", s.catalog.BorrowBook, "Book(s) borrowed successfully!") {
				return
			}
		case 3:
			if !s.transact("return", s.catalog.ReturnBook, "Book(s) returned successfully!") {
				return
			}
		case 4:
			fmt.Fprintln(s.out, "Exiting application. Goodbye!")
			return
		}
	}
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// menuChoice prompts until the user enters a number between 1 and 4.
func (s *Shell) menuChoice() (int, bool) {
	for {
		fmt.Fprintln(s.out, "1. Add Book")
		fmt.Fprintln(s.out, "2. Borrow Book")
		fmt.Fprintln(s.out, "3. Return Book")
		fmt.Fprintln(s.out, "4. Exit")
		fmt.Fprintln(s.out, "Please enter your choice (1-4):")

		line, ok := s.readLine()
		if !ok {
			return 0, false
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Please enter a number (1-4).")
			continue
		}
		if choice < 1 || choice > 4 {
			fmt.Fprintf(s.out, "Invalid choice: %d. Please select a number between 1 and 4.\n", choice)
			continue
		}
		return choice, true
	}
}

// quantityInput prompts until the user enters a non-negative integer.
// Zero is passed through so callers can treat it as cancellation.
func (s *Shell) quantityInput() (int, bool) {
	for {
		line, ok := s.readLine()
		if !ok {
			return 0, false
		}
		quantity, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Please enter an integer.")
			continue
		}
		if quantity < 0 {
			fmt.Fprintln(s.out, "Invalid input. Please enter a number greater than or equal to 0.")
			continue
		}
		return quantity, true
	}
}

func (s *Shell) addBook() bool {
	fmt.Fprintln(s.out, "Author?")
	author, ok := s.readLine()
	if !ok {
		return false
	}
	fmt.Fprintln(s.out, "Title?")
	title, ok := s.readLine()
	if !ok {
		return false
	}

	fmt.Fprintln(s.out, "Quantity? (Enter 0 to cancel)")
	quantity, ok := s.quantityInput()
	if !ok {
		return false
	}
	if quantity == 0 {
		fmt.Fprintln(s.out, "Action cancelled.")
		return true
	}

	if err := s.catalog.AddBook(title, author, quantity); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return true
	}
	fmt.Fprintln(s.out, "Book added/updated successfully!")
	fmt.Fprintln(s.out)
	return true
}

// transact runs the shared borrow/return flow: look up the title, pick a
// record when several authors share it, then prompt for a quantity until
// the operation succeeds or the user cancels with 0.
func (s *Shell) transact(verb string, op func(*catalog.Book, int) error, successMsg string) bool {
	fmt.Fprintf(s.out, "Title to %s?\n", verb)
	title, ok := s.readLine()
	if !ok {
		return false
	}

	matches := s.catalog.FindBook(title)
	if len(matches) == 0 {
		fmt.Fprintln(s.out, "Title not found.")
		return true
	}

	book, ok := s.selectBook(matches)
	if !ok {
		return false
	}

	for {
		fmt.Fprintln(s.out, "Quantity? (Enter 0 to cancel)")
		quantity, ok := s.quantityInput()
		if !ok {
			return false
		}
		if quantity == 0 {
			fmt.Fprintln(s.out, "Transaction cancelled.")
			return true
		}
		if err := op(book, quantity); err != nil {
			fmt.Fprintf(s.out, "Error: %v. Try again or enter 0 to cancel.\n", err)
			continue
		}
		fmt.Fprintln(s.out, successMsg)
		return true
	}
}

// selectBook asks the user to disambiguate when one title has several
// authors or editions. Choices are shown 1-based.
func (s *Shell) selectBook(matches []*catalog.Book) (*catalog.Book, bool) {
	if len(matches) == 1 {
		return matches[0], true
	}

	fmt.Fprintln(s.out)
	for i, b := range matches {
		fmt.Fprintf(s.out, "%d. %s by %s\n", i+1, b.Title(), b.Author())
	}
	fmt.Fprintln(s.out, "Which book exactly? (Enter the number)")

	for {
		choice, ok := s.quantityInput()
		if !ok {
			return nil, false
		}
		if choice <= 0 || choice > len(matches) {
			fmt.Fprintf(s.out, "Invalid input. Please enter a number between 1 and %d.\n", len(matches))
			continue
		}
		return matches[choice-1], true
	}
}
