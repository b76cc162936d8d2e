package instructors_test

import (
	"context"
	"testing"

	"github.com/codebar/admin/internal/instructors"
	"github.com/codebar/admin/internal/storage"
	"github.com/codebar/admin/pkg/badgerfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestService(t *testing.T) *instructors.Service {
	t.Helper()

	logger := zaptest.NewLogger(t)

	backend, err := storage.NewBackend(
		storage.Config{Driver: storage.DriverBadger, Badger: badgerfx.Config{InMemory: true}},
		logger,
	)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, backend.Close()) })

	repo, err := instructors.NewRepository(backend)
	require.NoError(t, err)

	return instructors.NewService(repo, logger)
}

func TestService_Lifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	bio := "Gopher"
	grace, err := svc.Create(ctx, instructors.InstructorDraft{
		Name:   "Grace",
		Skills: []string{"COBOL", "compilers"},
		Bio:    &bio,
	})
	require.NoError(t, err)
	require.NotZero(t, grace.ID)
	assert.Equal(t, []string{"COBOL", "compilers"}, grace.Skills)

	_, err = svc.Create(ctx, instructors.InstructorDraft{Name: "Grace"})
	require.ErrorIs(t, err, instructors.ErrAlreadyExists)

	linus, err := svc.Create(ctx, instructors.InstructorDraft{Name: "Linus"})
	require.NoError(t, err)
	assert.Equal(t, []string{}, linus.Skills)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Grace", all[0].Name)
	assert.Equal(t, "Linus", all[1].Name)

	skills := []string{"kernels"}
	updated, err := svc.Update(ctx, linus.ID, instructors.InstructorUpdate{Skills: &skills})
	require.NoError(t, err)
	assert.Equal(t, "Linus", updated.Name)
	assert.Equal(t, []string{"kernels"}, updated.Skills)
	assert.Nil(t, updated.Bio)

	name := "Grace"
	_, err = svc.Update(ctx, linus.ID, instructors.InstructorUpdate{Name: &name})
	require.ErrorIs(t, err, instructors.ErrAlreadyExists)

	found, err := svc.Get(ctx, grace.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Bio)
	assert.Equal(t, "Gopher", *found.Bio)

	require.NoError(t, svc.Delete(ctx, grace.ID))
	require.ErrorIs(t, svc.Delete(ctx, grace.ID), instructors.ErrNotFound)

	_, err = svc.Get(ctx, grace.ID)
	require.ErrorIs(t, err, instructors.ErrNotFound)

	_, err = svc.Update(ctx, grace.ID, instructors.InstructorUpdate{Name: &name})
	require.ErrorIs(t, err, instructors.ErrNotFound)
}
