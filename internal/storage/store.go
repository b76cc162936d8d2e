package storage

import (
	"context"
	"fmt"
)

// Entity is implemented by pointers to persisted models.
type Entity interface {
	Base() *BaseEntity
	// UniqueKey is the value that must not repeat within the collection.
	UniqueKey() string
}

type entityPtr[T any] interface {
	*T
	Entity
}

// Store is a typed collection of entities with a unique key.
//
// Insert assigns the id and timestamps. Insert and Update fail with
// ErrAlreadyExists when the unique key is taken; the check and the write are a
// single atomic operation. Get, Update and Delete fail with ErrNotFound for
// unknown ids.
type Store[T any] interface {
	Insert(ctx context.Context, entity *T) error
	Get(ctx context.Context, id uint64) (*T, error)
	GetByKey(ctx context.Context, key string) (*T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, id uint64, updater func(*T) error) (*T, error)
	Delete(ctx context.Context, id uint64) error
}

// Collection names the stored set of entities.
type Collection struct {
	// Name is the key prefix in Badger and must equal the model's TableName in SQL.
	Name string
	// UniqueColumn is the SQL column holding the unique key.
	UniqueColumn string
}

func NewStore[T any, PT entityPtr[T]](backend *Backend, collection Collection) (Store[T], error) {
	switch backend.driver {
	case DriverBadger:
		seq, err := backend.sequence(collection.Name)
		if err != nil {
			return nil, err
		}
		return newBadgerStore[T, PT](backend.badger, seq, collection), nil
	case DriverSQLite, DriverMySQL, DriverPostgres:
		return newSQLStore[T, PT](backend.sql, collection)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %q", backend.driver)
	}
}
