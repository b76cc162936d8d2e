package instructors

import (
	"context"
	"errors"
	"fmt"

	"github.com/codebar/admin/internal/storage"
)

var collection = storage.Collection{Name: "instructors", UniqueColumn: "name"}

type Repository struct {
	instructors storage.Store[instructorModel]
}

func NewRepository(backend *storage.Backend) (*Repository, error) {
	instructors, err := storage.NewStore[instructorModel](backend, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to open instructors store: %w", err)
	}

	return &Repository{instructors: instructors}, nil
}

func (r *Repository) Create(ctx context.Context, draft InstructorDraft) (*Instructor, error) {
	model := newInstructorModel(draft)
	if err := r.instructors.Insert(ctx, model); err != nil {
		return nil, mapError(err)
	}

	return model.toDomain(), nil
}

func (r *Repository) List(ctx context.Context) ([]Instructor, error) {
	models, err := r.instructors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list instructors: %w", err)
	}

	instructors := make([]Instructor, 0, len(models))
	for i := range models {
		instructors = append(instructors, *models[i].toDomain())
	}

	return instructors, nil
}

func (r *Repository) Get(ctx context.Context, id uint64) (*Instructor, error) {
	model, err := r.instructors.Get(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}

	return model.toDomain(), nil
}

func (r *Repository) Update(ctx context.Context, id uint64, update InstructorUpdate) (*Instructor, error) {
	model, err := r.instructors.Update(ctx, id, func(m *instructorModel) error {
		m.apply(update)
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}

	return model.toDomain(), nil
}

func (r *Repository) Delete(ctx context.Context, id uint64) error {
	if err := r.instructors.Delete(ctx, id); err != nil {
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
