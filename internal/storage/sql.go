package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sqlStore[T any, PT entityPtr[T]] struct {
	collection Collection

	db *gorm.DB
}

func newSQLStore[T any, PT entityPtr[T]](db *gorm.DB, collection Collection) (*sqlStore[T, PT], error) {
	if err := db.AutoMigrate(PT(new(T))); err != nil {
		return nil, fmt.Errorf("failed to migrate %s: %w", collection.Name, err)
	}

	return &sqlStore[T, PT]{
		collection: collection,

		db: db,
	}, nil
}

// Insert implements Store.
func (s *sqlStore[T, PT]) Insert(ctx context.Context, entity *T) error {
	value := PT(entity)
	value.Base().ID = 0

	if err := s.db.WithContext(ctx).Create(value).Error; err != nil {
		value.Base().ID = 0
		return fmt.Errorf("failed to insert %s: %w", s.collection.Name, s.translateError(err, value.UniqueKey()))
	}

	return nil
}

// Get implements Store.
func (s *sqlStore[T, PT]) Get(ctx context.Context, id uint64) (*T, error) {
	entity := new(T)
	if err := s.db.WithContext(ctx).First(entity, id).Error; err != nil {
		return nil, s.translateError(err, fmt.Sprintf("%d", id))
	}

	return entity, nil
}

// GetByKey implements Store.
func (s *sqlStore[T, PT]) GetByKey(ctx context.Context, key string) (*T, error) {
	entity := new(T)
	err := s.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: s.collection.UniqueColumn}, Value: key}).
		First(entity).
		Error
	if err != nil {
		return nil, s.translateError(err, key)
	}

	return entity, nil
}

// List implements Store.
func (s *sqlStore[T, PT]) List(ctx context.Context) ([]T, error) {
	entities := make([]T, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.collection.Name, err)
	}

	return entities, nil
}

// Update implements Store.
func (s *sqlStore[T, PT]) Update(ctx context.Context, id uint64, updater func(*T) error) (*T, error) {
	var result *T

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entity := new(T)
		if err := tx.First(entity, id).Error; err != nil {
			return s.translateError(err, fmt.Sprintf("%d", id))
		}

		if err := updater(entity); err != nil {
			return err
		}

		value := PT(entity)
		value.Base().ID = id
		if err := tx.Save(value).Error; err != nil {
			return s.translateError(err, value.UniqueKey())
		}

		result = entity
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", s.collection.Name, err)
	}

	return result, nil
}

// Delete implements Store.
func (s *sqlStore[T, PT]) Delete(ctx context.Context, id uint64) error {
	res := s.db.WithContext(ctx).Delete(PT(new(T)), id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", s.collection.Name, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s %d", ErrNotFound, s.collection.Name, id)
	}

	return nil
}

func (s *sqlStore[T, PT]) translateError(err error, key string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %s %s", ErrNotFound, s.collection.Name, key)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %q", ErrAlreadyExists, key)
	default:
		return err
	}
}
