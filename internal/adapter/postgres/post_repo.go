package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"weblog/internal/domain"
)

// PostRepo implements post repository operations on DB.
type PostRepo struct {
	db *DB
}

// NewPostRepo wraps a DB as a PostRepository.
func NewPostRepo(db *DB) *PostRepo {
	return &PostRepo{db: db}
}

// Create inserts a post with a server-assigned id and timestamp.
func (r *PostRepo) Create(ctx context.Context, authorID int64, title, body string) (int64, error) {
	var id int64
	err := r.db.sql.QueryRowContext(ctx,
		"INSERT INTO posts (author_id, title, body, created_at) VALUES ($1, $2, $3, $4) RETURNING id",
		authorID, title, body, time.Now(),
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// List returns all posts with author usernames, newest first. The id
// tie-break keeps same-timestamp rows in insertion order.
func (r *PostRepo) List(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		`SELECT p.id, p.author_id, p.title, p.body, p.created_at, u.username
		 FROM posts p JOIN users u ON p.author_id = u.id
		 ORDER BY p.created_at DESC, p.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Body, &p.CreatedAt, &p.AuthorName); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Get retrieves a post by id with its author username.
func (r *PostRepo) Get(ctx context.Context, id int64) (*domain.Post, error) {
	var p domain.Post
	err := r.db.sql.QueryRowContext(ctx,
		`SELECT p.id, p.author_id, p.title, p.body, p.created_at, u.username
		 FROM posts p JOIN users u ON p.author_id = u.id
		 WHERE p.id = $1`,
		id,
	).Scan(&p.ID, &p.AuthorID, &p.Title, &p.Body, &p.CreatedAt, &p.AuthorName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update overwrites title and body only.
func (r *PostRepo) Update(ctx context.Context, id int64, title, body string) error {
	_, err := r.db.sql.ExecContext(ctx,
		"UPDATE posts SET title = $1, body = $2 WHERE id = $3",
		title, body, id,
	)
	return err
}

// Delete removes the post row.
func (r *PostRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.sql.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)
	return err
}
