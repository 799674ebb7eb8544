package app

import (
	"testing"

	"weblog/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestRequireLogin(t *testing.T) {
	assert.ErrorIs(t, RequireLogin(nil), domain.ErrAuthRequired)
	assert.NoError(t, RequireLogin(&domain.User{ID: 1}))
}

func TestRequireOwnership(t *testing.T) {
	post := &domain.Post{ID: 10, AuthorID: 1}

	assert.ErrorIs(t, RequireOwnership(nil, post), domain.ErrAuthRequired)
	assert.ErrorIs(t, RequireOwnership(&domain.User{ID: 2}, post), domain.ErrForbidden)
	assert.NoError(t, RequireOwnership(&domain.User{ID: 1}, post))
}
