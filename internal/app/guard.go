package app

import "weblog/internal/domain"

// RequireLogin passes when a user is logged in and fails with
// domain.ErrAuthRequired for anonymous callers.
func RequireLogin(user *domain.User) error {
	if user == nil {
		return domain.ErrAuthRequired
	}
	return nil
}

// RequireOwnership passes when the user authored the post and fails with
// domain.ErrForbidden otherwise. Callers must fetch the post first so that
// a missing post reports not-found rather than forbidden.
func RequireOwnership(user *domain.User, post *domain.Post) error {
	if err := RequireLogin(user); err != nil {
		return err
	}
	if post.AuthorID != user.ID {
		return domain.ErrForbidden
	}
	return nil
}
