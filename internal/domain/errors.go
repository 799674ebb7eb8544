package domain

import "errors"

var (
	// ErrDuplicateUsername indicates the username is already registered.
	ErrDuplicateUsername = errors.New("username already registered")
	// ErrIncorrectUsername indicates no user exists with the given username.
	ErrIncorrectUsername = errors.New("incorrect username")
	// ErrIncorrectPassword indicates the password did not match the stored hash.
	ErrIncorrectPassword = errors.New("incorrect password")
	// ErrAuthRequired indicates the caller is anonymous but the operation
	// needs a logged-in user.
	ErrAuthRequired = errors.New("authentication required")
	// ErrForbidden indicates the caller is not the owner of the target post.
	ErrForbidden = errors.New("forbidden")
	// ErrPostNotFound indicates the requested post does not exist.
	ErrPostNotFound = errors.New("post not found")
)

// ValidationError reports user-correctable input problems. Message is shown
// to the user as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
