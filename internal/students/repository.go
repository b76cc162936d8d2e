package students

import (
	"context"
	"errors"
	"fmt"

	"github.com/codebar/admin/internal/storage"
)

var collection = storage.Collection{Name: "students", UniqueColumn: "name"}

type Repository struct {
	students storage.Store[studentModel]
}

func NewRepository(backend *storage.Backend) (*Repository, error) {
	students, err := storage.NewStore[studentModel](backend, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to open students store: %w", err)
	}

	return &Repository{students: students}, nil
}

func (r *Repository) Create(ctx context.Context, draft StudentDraft) (*Student, error) {
	model := newStudentModel(draft)
	if err := r.students.Insert(ctx, model); err != nil {
		return nil, mapError(err)
	}

	return model.toDomain(), nil
}

func (r *Repository) List(ctx context.Context) ([]Student, error) {
	models, err := r.students.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	students := make([]Student, 0, len(models))
	for i := range models {
		students = append(students, *models[i].toDomain())
	}

	return students, nil
}

func (r *Repository) Get(ctx context.Context, id uint64) (*Student, error) {
	model, err := r.students.Get(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}

	return model.toDomain(), nil
}

func (r *Repository) Update(ctx context.Context, id uint64, update StudentUpdate) (*Student, error) {
	model, err := r.students.Update(ctx, id, func(m *studentModel) error {
		m.apply(update)
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}

	return model.toDomain(), nil
}

func (r *Repository) Delete(ctx context.Context, id uint64) error {
	if err := r.students.Delete(ctx, id); err != nil {
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
