package students

import (
	"context"
	"testing"

	"github.com/codebar/admin/internal/storage"
	"github.com/codebar/admin/pkg/badgerfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestService(t *testing.T) (*Service, *Repository) {
	t.Helper()

	logger := zaptest.NewLogger(t)

	backend, err := storage.NewBackend(
		storage.Config{Driver: storage.DriverBadger, Badger: badgerfx.Config{InMemory: true}},
		logger,
	)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, backend.Close()) })

	repo, err := NewRepository(backend)
	require.NoError(t, err)

	return NewService(repo, logger), repo
}

func TestService_CreateAndGet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	picture := "ada.png"
	created, err := svc.Create(ctx, StudentDraft{
		Name:    "Ada",
		Reasons: []string{"learn Go", "meet people"},
		Picture: &picture,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", found.Name)
	assert.Equal(t, []string{"learn Go", "meet people"}, found.Reasons)
	require.NotNil(t, found.Picture)
	assert.Equal(t, "ada.png", *found.Picture)

	_, err = svc.Get(ctx, created.ID+100)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_Create_NoReasons(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), StudentDraft{Name: "Bob"})
	require.NoError(t, err)
	assert.Equal(t, []string{}, created.Reasons)
	assert.Nil(t, created.Picture)
}

func TestService_Create_Duplicate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, StudentDraft{Name: "Ada"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, StudentDraft{Name: "Ada"})
	require.ErrorIs(t, err, ErrAlreadyExists)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestService_List(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	for _, name := range []string{"Ada", "Bob", "Cy"} {
		_, err = svc.Create(ctx, StudentDraft{Name: name})
		require.NoError(t, err)
	}

	all, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Ada", all[0].Name)
	assert.Equal(t, "Cy", all[2].Name)
}

func TestService_Update(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	picture := "ada.png"
	ada, err := svc.Create(ctx, StudentDraft{Name: "Ada", Reasons: []string{"a"}, Picture: &picture})
	require.NoError(t, err)
	_, err = svc.Create(ctx, StudentDraft{Name: "Bob"})
	require.NoError(t, err)

	t.Run("partial", func(t *testing.T) {
		reasons := []string{"b", "c"}
		updated, updErr := svc.Update(ctx, ada.ID, StudentUpdate{Reasons: &reasons})
		require.NoError(t, updErr)
		assert.Equal(t, "Ada", updated.Name)
		assert.Equal(t, []string{"b", "c"}, updated.Reasons)
		require.NotNil(t, updated.Picture)
		assert.Equal(t, "ada.png", *updated.Picture)
	})

	t.Run("rename onto existing", func(t *testing.T) {
		name := "Bob"
		_, updErr := svc.Update(ctx, ada.ID, StudentUpdate{Name: &name})
		require.ErrorIs(t, updErr, ErrAlreadyExists)
	})

	t.Run("missing", func(t *testing.T) {
		name := "Zed"
		_, updErr := svc.Update(ctx, 999, StudentUpdate{Name: &name})
		require.ErrorIs(t, updErr, ErrNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	ada, err := svc.Create(ctx, StudentDraft{Name: "Ada"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, ada.ID))
	require.ErrorIs(t, svc.Delete(ctx, ada.ID), ErrNotFound)

	_, err = svc.Get(ctx, ada.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_MalformedReasons(t *testing.T) {
	_, repo := newTestService(t)
	ctx := context.Background()

	model := &studentModel{Name: "Legacy", Reasons: "learn,teach"}
	require.NoError(t, repo.students.Insert(ctx, model))

	found, err := repo.Get(ctx, model.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{}, found.Reasons)
}

func TestService_Update_KeepsUnsuppliedReasons(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	model := &studentModel{Name: "Legacy", Reasons: "learn,teach"}
	require.NoError(t, repo.students.Insert(ctx, model))

	name := "Legacy2"
	updated, err := svc.Update(ctx, model.ID, StudentUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Legacy2", updated.Name)
	assert.Equal(t, []string{}, updated.Reasons)

	raw, err := repo.students.Get(ctx, model.ID)
	require.NoError(t, err)
	assert.Equal(t, "Legacy2", raw.Name)
	assert.Equal(t, "learn,teach", raw.Reasons)

	reasons := []string{"teach"}
	_, err = svc.Update(ctx, model.ID, StudentUpdate{Reasons: &reasons})
	require.NoError(t, err)

	raw, err = repo.students.Get(ctx, model.ID)
	require.NoError(t, err)
	assert.Equal(t, `["teach"]`, raw.Reasons)
}
