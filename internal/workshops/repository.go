package workshops

import (
	"context"
	"errors"
	"fmt"

	"github.com/codebar/admin/internal/storage"
)

var collection = storage.Collection{Name: "workshops", UniqueColumn: "subject"}

type Repository struct {
	workshops storage.Store[workshopModel]
}

func NewRepository(backend *storage.Backend) (*Repository, error) {
	workshops, err := storage.NewStore[workshopModel](backend, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to open workshops store: %w", err)
	}

	return &Repository{workshops: workshops}, nil
}

func (r *Repository) Create(ctx context.Context, draft WorkshopDraft) (*Workshop, error) {
	model := newWorkshopModel(draft)
	if err := r.workshops.Insert(ctx, model); err != nil {
		return nil, mapError(err)
	}

	return model.toDomain(), nil
}

func (r *Repository) List(ctx context.Context) ([]Workshop, error) {
	models, err := r.workshops.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workshops: %w", err)
	}

	workshops := make([]Workshop, 0, len(models))
	for i := range models {
		workshops = append(workshops, *models[i].toDomain())
	}

	return workshops, nil
}

func (r *Repository) Get(ctx context.Context, id uint64) (*Workshop, error) {
	model, err := r.workshops.Get(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}

	return model.toDomain(), nil
}

func (r *Repository) Update(ctx context.Context, id uint64, update WorkshopUpdate) (*Workshop, error) {
	model, err := r.workshops.Update(ctx, id, func(m *workshopModel) error {
		m.apply(update)
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}

	return model.toDomain(), nil
}

func (r *Repository) Delete(ctx context.Context, id uint64) error {
	if err := r.workshops.Delete(ctx, id); err != nil {
		return mapError(err)
	}

	return nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, storage.ErrAlreadyExists):
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	default:
		return err
	}
}
