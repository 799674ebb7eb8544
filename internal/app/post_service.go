package app

import (
	"context"

	"weblog/internal/domain"
)

// PostService implements post CRUD with login and ownership enforcement.
type PostService struct {
	posts domain.PostRepository
}

// NewPostService creates a new post service.
func NewPostService(posts domain.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// List returns all posts, newest first, with author usernames attached.
// Anonymous callers may list.
func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}

// Get fetches a single post or domain.ErrPostNotFound.
func (s *PostService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}
	return post, nil
}

// Create stores a new post authored by user. Title and body are stored
// as submitted, empty or not.
func (s *PostService) Create(ctx context.Context, user *domain.User, title, body string) (int64, error) {
	if err := RequireLogin(user); err != nil {
		return 0, err
	}
	return s.posts.Create(ctx, user.ID, title, body)
}

// Update overwrites title and body of the user's own post. The fetch runs
// before the ownership check so a missing post is not-found, not forbidden.
func (s *PostService) Update(ctx context.Context, user *domain.User, id int64, title, body string) error {
	if err := RequireLogin(user); err != nil {
		return err
	}
	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := RequireOwnership(user, post); err != nil {
		return err
	}
	return s.posts.Update(ctx, id, title, body)
}

// Delete removes the user's own post. Deleting an already-deleted id
// reports not-found.
func (s *PostService) Delete(ctx context.Context, user *domain.User, id int64) error {
	if err := RequireLogin(user); err != nil {
		return err
	}
	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := RequireOwnership(user, post); err != nil {
		return err
	}
	return s.posts.Delete(ctx, id)
}
