package store

// Repository implementation (Postgres)

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LongerDude/Library-Management-System/internal/entity"
	"github.com/LongerDude/Library-Management-System/internal/usecase"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

func (r *BookPG) Create(ctx context.Context, b *entity.Book) error {
	const query = `
	INSERT INTO books (title, author, amount)
	VALUES ($1, $2, $3)
	RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, b.Title, b.Author, b.Amount).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BookPG) List(ctx context.Context) ([]entity.Book, error) {
	const query = `
	SELECT id, title, author, amount, created_at, updated_at
	FROM books
	ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Amount, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *BookPG) GetByID(ctx context.Context, id int64) (entity.Book, error) {
	const query = `
	SELECT id, title, author, amount, created_at, updated_at
	FROM books
	WHERE id = $1
	LIMIT 1
	`
	var b entity.Book
	err := r.db.QueryRow(ctx, query, id).
		Scan(&b.ID, &b.Title, &b.Author, &b.Amount, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, err
	}
	return b, nil
}

func (r *BookPG) UpdateAmount(ctx context.Context, id int64, amount int) error {
	const query = `
	UPDATE books
	SET amount = $2, updated_at = now()
	WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, id, amount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}
