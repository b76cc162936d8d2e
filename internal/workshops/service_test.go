package workshops_test

import (
	"context"
	"testing"
	"time"

	"github.com/codebar/admin/internal/storage"
	"github.com/codebar/admin/internal/workshops"
	"github.com/codebar/admin/pkg/badgerfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestService(t *testing.T) *workshops.Service {
	t.Helper()

	logger := zaptest.NewLogger(t)

	backend, err := storage.NewBackend(
		storage.Config{Driver: storage.DriverBadger, Badger: badgerfx.Config{InMemory: true}},
		logger,
	)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, backend.Close()) })

	repo, err := workshops.NewRepository(backend)
	require.NoError(t, err)

	return workshops.NewService(repo, logger)
}

func TestService_Create(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	date := time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC)
	created, err := svc.Create(ctx, workshops.WorkshopDraft{
		Subject:     "Intro to Go",
		Date:        &date,
		Instructors: []string{"Grace"},
		Students:    []string{"Ada", "Bob"},
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Intro to Go", found.Subject)
	require.NotNil(t, found.Date)
	assert.True(t, date.Equal(*found.Date))
	assert.Equal(t, []string{"Grace"}, found.Instructors)
	assert.Equal(t, []string{"Ada", "Bob"}, found.Students)
	assert.Nil(t, found.Description)

	_, err = svc.Create(ctx, workshops.WorkshopDraft{Subject: "Intro to Go"})
	require.ErrorIs(t, err, workshops.ErrAlreadyExists)
}

func TestService_Update(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	goWorkshop, err := svc.Create(ctx, workshops.WorkshopDraft{Subject: "Go", Students: []string{"Ada"}})
	require.NoError(t, err)
	_, err = svc.Create(ctx, workshops.WorkshopDraft{Subject: "Rust"})
	require.NoError(t, err)

	description := "Goroutines and channels"
	students := []string{}
	updated, err := svc.Update(ctx, goWorkshop.ID, workshops.WorkshopUpdate{
		Description: &description,
		Students:    &students,
	})
	require.NoError(t, err)
	assert.Equal(t, "Go", updated.Subject)
	assert.Equal(t, []string{}, updated.Students)
	require.NotNil(t, updated.Description)
	assert.Equal(t, description, *updated.Description)

	subject := "Rust"
	_, err = svc.Update(ctx, goWorkshop.ID, workshops.WorkshopUpdate{Subject: &subject})
	require.ErrorIs(t, err, workshops.ErrAlreadyExists)

	_, err = svc.Update(ctx, 404, workshops.WorkshopUpdate{Subject: &subject})
	require.ErrorIs(t, err, workshops.ErrNotFound)
}

func TestService_ListAndDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, subject := range []string{"HTML", "CSS", "JS"} {
		_, err := svc.Create(ctx, workshops.WorkshopDraft{Subject: subject})
		require.NoError(t, err)
	}

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"HTML", "CSS", "JS"}, []string{all[0].Subject, all[1].Subject, all[2].Subject})

	require.NoError(t, svc.Delete(ctx, all[1].ID))
	require.ErrorIs(t, svc.Delete(ctx, all[1].ID), workshops.ErrNotFound)

	all, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
