package app

import (
	"context"
	"testing"

	"weblog/internal/adapter/memory"
	"weblog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostFixture(t *testing.T) (*PostService, *domain.User, *domain.User) {
	t.Helper()
	db := memory.New()

	ctx := context.Background()
	alice, err := db.Create(ctx, "alice", "hash-a")
	require.NoError(t, err)
	bob, err := db.Create(ctx, "bob", "hash-b")
	require.NoError(t, err)

	return NewPostService(db.NewPostRepo()), alice, bob
}

func TestPostService_CreateAndGet(t *testing.T) {
	svc, alice, _ := newPostFixture(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, alice, "Title A", "Body A")
	require.NoError(t, err)

	post, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Title A", post.Title)
	assert.Equal(t, "Body A", post.Body)
	assert.Equal(t, alice.ID, post.AuthorID)
	assert.Equal(t, "alice", post.AuthorName)
	assert.False(t, post.CreatedAt.IsZero())
}

func TestPostService_Create_EmptyTitleAllowed(t *testing.T) {
	svc, alice, _ := newPostFixture(t)

	id, err := svc.Create(context.Background(), alice, "", "")
	require.NoError(t, err)
	assert.NotZero(t, id)
}

func TestPostService_Create_RequiresLogin(t *testing.T) {
	svc, _, _ := newPostFixture(t)

	_, err := svc.Create(context.Background(), nil, "Title", "Body")
	assert.ErrorIs(t, err, domain.ErrAuthRequired)

	posts, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostService_List_NewestFirst(t *testing.T) {
	svc, alice, bob := newPostFixture(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, alice, "first", "a")
	require.NoError(t, err)
	second, err := svc.Create(ctx, bob, "second", "b")
	require.NoError(t, err)

	posts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	// Equal timestamps fall back to insertion order, newest first.
	assert.Equal(t, second, posts[0].ID)
	assert.Equal(t, first, posts[1].ID)
	assert.Equal(t, "bob", posts[0].AuthorName)
	assert.Equal(t, "alice", posts[1].AuthorName)
}

func TestPostService_Get_NotFound(t *testing.T) {
	svc, _, _ := newPostFixture(t)

	_, err := svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestPostService_Update_Owner(t *testing.T) {
	svc, alice, _ := newPostFixture(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, alice, "old", "old body")
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, alice, id, "new", "new body"))

	post, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "new", post.Title)
	assert.Equal(t, "new body", post.Body)
	assert.Equal(t, alice.ID, post.AuthorID)
}

func TestPostService_Update_NonOwnerForbidden(t *testing.T) {
	svc, alice, bob := newPostFixture(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, alice, "Title A", "Body A")
	require.NoError(t, err)

	err = svc.Update(ctx, bob, id, "hijacked", "hijacked")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// State before == state after.
	post, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Title A", post.Title)
	assert.Equal(t, "Body A", post.Body)
}

func TestPostService_Update_MissingPostIsNotFoundNotForbidden(t *testing.T) {
	svc, alice, _ := newPostFixture(t)

	err := svc.Update(context.Background(), alice, 999, "t", "b")
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestPostService_Update_RequiresLogin(t *testing.T) {
	svc, alice, _ := newPostFixture(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, alice, "t", "b")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Update(ctx, nil, id, "x", "y"), domain.ErrAuthRequired)
}

func TestPostService_Delete(t *testing.T) {
	svc, alice, bob := newPostFixture(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, alice, "t", "b")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, bob, id), domain.ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, nil, id), domain.ErrAuthRequired)

	require.NoError(t, svc.Delete(ctx, alice, id))

	// Second delete of a gone row reports not-found.
	assert.ErrorIs(t, svc.Delete(ctx, alice, id), domain.ErrPostNotFound)

	posts, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
}
