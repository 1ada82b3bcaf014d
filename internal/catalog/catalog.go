// Package catalog implements the in-memory book inventory: a
// case-insensitive title index over book records, with add, find,
// borrow and return operations.
package catalog

import (
	"errors"
	"strings"
	"sync"
)

// ErrInvalidQuantity is returned when an operation receives a quantity <= 0.
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// ErrInsufficientStock is returned when a borrow requests more copies than are available.
var ErrInsufficientStock = errors.New("not enough copies available")

// Book is a single (title, author) record. The title keeps the casing it was
// first added with; lookups go through the catalog's lowercased index.
// Copy counts are only ever mutated through the owning Catalog.
type Book struct {
	title  string
	author string
	copies int
}

func (b *Book) Title() string  { return b.title }
func (b *Book) Author() string { return b.author }

// Copies reports the number of copies currently available.
func (b *Book) Copies() int { return b.copies }

func (b *Book) addCopies(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	b.copies += quantity
	return nil
}

func (b *Book) borrow(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > b.copies {
		return ErrInsufficientStock
	}
	b.copies -= quantity
	return nil
}

func (b *Book) returnCopies(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	b.copies += quantity
	return nil
}

// Catalog owns every Book record, indexed by lowercased title. A title bucket
// holds the records sharing that title (distinct authors or editions) in
// insertion order. Buckets only ever grow; zero-stock records stay listed.
// A single mutex guards the four operations so the catalog can sit behind
// concurrent shells.
type Catalog struct {
	mu    sync.Mutex
	books map[string][]*Book
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{books: make(map[string][]*Book)}
}

// AddBook records quantity new copies of (title, author). If the pair already
// exists, matched case-insensitively on both parts, its copy count grows;
// otherwise a new record is appended to the title's bucket. Several authors
// sharing one title is an expected case, never an error.
func (c *Catalog) AddBook(title, author string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := strings.ToLower(title)
	for _, b := range c.books[key] {
		if strings.EqualFold(b.author, author) {
			// The record validates quantity again in case a caller
			// reaches it without going through the check above.
			return b.addCopies(quantity)
		}
	}
	c.books[key] = append(c.books[key], &Book{title: title, author: author, copies: quantity})
	return nil
}

// FindBook returns every record whose title matches case-insensitively, in
// insertion order. Unknown titles yield an empty slice, never an error.
func (c *Catalog) FindBook(title string) []*Book {
	c.mu.Lock()
	defer c.mu.Unlock()

	bucket := c.books[strings.ToLower(title)]
	matches := make([]*Book, len(bucket))
	copy(matches, bucket)
	return matches
}

// BorrowBook takes quantity copies of a record obtained from FindBook. When
// fewer copies are available than requested it fails with
// ErrInsufficientStock and leaves the record untouched.
func (c *Catalog) BorrowBook(book *Book, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return book.borrow(quantity)
}

// ReturnBook puts quantity copies of a record back. There is no upper bound
// on a record's copy count.
func (c *Catalog) ReturnBook(book *Book, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return book.returnCopies(quantity)
}
