package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/codebar/admin/internal/storage"
)

var usersCollection = storage.Collection{Name: "users", UniqueColumn: "username"}

// Repository is the credential store.
type Repository struct {
	users storage.Store[userModel]
}

func NewRepository(backend *storage.Backend) (*Repository, error) {
	users, err := storage.NewStore[userModel](backend, usersCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to open users store: %w", err)
	}

	return &Repository{users: users}, nil
}

// Create inserts a new user; the username check and the insert are atomic.
func (r *Repository) Create(ctx context.Context, username, passwordHash, role string) (*User, error) {
	model := newUserModel(username, passwordHash, role)
	if err := r.users.Insert(ctx, model); err != nil {
		return nil, mapError(err)
	}

	return model.toDomain(), nil
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (*User, error) {
	model, err := r.users.GetByKey(ctx, username)
	if err != nil {
		return nil, mapError(err)
	}

	return model.toDomain(), nil
}

func (r *Repository) List(ctx context.Context) ([]User, error) {
	models, err := r.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]User, 0, len(models))
	for i := range models {
		users = append(users, *models[i].toDomain())
	}

	return users, nil
}

func (r *Repository) Update(ctx context.Context, id uint64, updater func(*User) error) (*User, error) {
	model, err := r.users.Update(ctx, id, func(m *userModel) error {
		user := m.toDomain()
		if err := updater(user); err != nil {
			return err
		}

		m.update(user)
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}

	return model.toDomain(), nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	case errors.Is(err, storage.ErrAlreadyExists):
		return fmt.Errorf("%w: %w", ErrDuplicateUser, err)
	default:
		return err
	}
}
