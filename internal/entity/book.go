package entity

import "time"

// Book is the persisted inventory row exposed by the REST API. Title and
// author identify the book and never change after creation; amount is the
// copy count and stays non-negative (also enforced by a DB constraint).
type Book struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Amount    int       `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
