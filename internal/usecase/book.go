package usecase

import (
	"context"
	"errors"

	"github.com/LongerDude/Library-Management-System/internal/entity"
)

// ErrNotFound is returned when a book id does not exist.
var ErrNotFound = errors.New("book not found")

// BookRepository is the contract the HTTP layer depends on; the Postgres
// implementation lives in internal/store.
type BookRepository interface {
	// Create inserts a book and fills in its generated id and timestamps.
	Create(ctx context.Context, b *entity.Book) error
	// List returns every book in stable id order.
	List(ctx context.Context) ([]entity.Book, error)
	// GetByID returns a single book or ErrNotFound.
	GetByID(ctx context.Context, id int64) (entity.Book, error)
	// UpdateAmount replaces a book's copy count, keeping title and author.
	UpdateAmount(ctx context.Context, id int64, amount int) error
}
