package domain

import (
	"context"
	"time"
)

// Post is a blog entry. AuthorName is populated only on reads that join the
// author row; it is never written back.
type Post struct {
	ID         int64
	AuthorID   int64
	Title      string
	Body       string
	CreatedAt  time.Time
	AuthorName string
}

// PostRepository defines the port for post persistence operations.
// Get returns (nil, nil) when no row matches.
type PostRepository interface {
	Create(ctx context.Context, authorID int64, title, body string) (int64, error)
	// List returns all posts joined with their author's username, newest
	// first. Equal timestamps fall back to insertion order.
	List(ctx context.Context) ([]Post, error)
	Get(ctx context.Context, id int64) (*Post, error)
	Update(ctx context.Context, id int64, title, body string) error
	Delete(ctx context.Context, id int64) error
}
