package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/codebar/admin/pkg/badgerfx"
	"github.com/dgraph-io/badger/v4"
)

// record binds a model to its collection keys.
type record[T any, PT entityPtr[T]] struct {
	collection string
	value      PT
}

func (r *record[T, PT]) StorageKey() string {
	return idKey(r.collection, r.value.Base().ID)
}

func (r *record[T, PT]) StorageIndexes() []string {
	return []string{uniqueKey(r.collection, r.value.UniqueKey())}
}

func (r *record[T, PT]) MarshalStorage() ([]byte, error) {
	data, err := json.Marshal(r.value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", r.collection, err)
	}

	return data, nil
}

func (r *record[T, PT]) UnmarshalStorage(data []byte) error {
	if err := json.Unmarshal(data, r.value); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", r.collection, err)
	}

	return nil
}

// maxUpdateAttempts bounds retries of an update aborted by a concurrent write.
const maxUpdateAttempts = 5

// idKey is zero padded so that prefix iteration follows id order.
func idKey(collection string, id uint64) string {
	return fmt.Sprintf("%s:id:%020d", collection, id)
}

func uniqueKey(collection, key string) string {
	return collection + ":key:" + key
}

type badgerStore[T any, PT entityPtr[T]] struct {
	collection string

	db   *badger.DB
	seq  *badger.Sequence
	repo *badgerfx.Repository[*record[T, PT]]
}

func newBadgerStore[T any, PT entityPtr[T]](
	db *badger.DB,
	seq *badger.Sequence,
	collection Collection,
) *badgerStore[T, PT] {
	return &badgerStore[T, PT]{
		collection: collection.Name,

		db:  db,
		seq: seq,
		repo: badgerfx.NewRepository(func() *record[T, PT] {
			return &record[T, PT]{collection: collection.Name, value: PT(new(T))}
		}),
	}
}

func (s *badgerStore[T, PT]) wrap(entity *T) *record[T, PT] {
	return &record[T, PT]{collection: s.collection, value: PT(entity)}
}

// Insert implements Store.
func (s *badgerStore[T, PT]) Insert(_ context.Context, entity *T) error {
	rec := s.wrap(entity)
	base := rec.value.Base()
	key := rec.value.UniqueKey()

	err := s.db.Update(func(txn *badger.Txn) error {
		exists, existsErr := s.repo.Exists(txn, uniqueKey(s.collection, key))
		if existsErr != nil {
			return existsErr
		}
		if exists {
			return fmt.Errorf("%w: %q", ErrAlreadyExists, key)
		}

		next, seqErr := s.seq.Next()
		if seqErr != nil {
			return fmt.Errorf("failed to allocate id: %w", seqErr)
		}

		now := time.Now()
		base.ID = next + 1
		base.CreatedAt = now
		base.UpdatedAt = now

		return s.repo.Write(txn, rec)
	})

	if errors.Is(err, badger.ErrConflict) {
		err = fmt.Errorf("%w: %q", ErrAlreadyExists, key)
	}
	if err != nil {
		base.ID = 0
		return fmt.Errorf("failed to insert %s: %w", s.collection, err)
	}

	return nil
}

// Get implements Store.
func (s *badgerStore[T, PT]) Get(_ context.Context, id uint64) (*T, error) {
	var found *record[T, PT]

	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		found, err = s.read(txn, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return found.value, nil
}

// GetByKey implements Store.
func (s *badgerStore[T, PT]) GetByKey(_ context.Context, key string) (*T, error) {
	var found *record[T, PT]

	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		found, err = s.repo.ReadByIndex(txn, uniqueKey(s.collection, key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %q", ErrNotFound, key)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return found.value, nil
}

// List implements Store.
func (s *badgerStore[T, PT]) List(_ context.Context) ([]T, error) {
	var records []*record[T, PT]

	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		records, err = s.repo.List(txn, s.collection+":id:", badger.DefaultIteratorOptions)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.collection, err)
	}

	entities := make([]T, 0, len(records))
	for _, rec := range records {
		entities = append(entities, *rec.value)
	}

	return entities, nil
}

// Update implements Store.
func (s *badgerStore[T, PT]) Update(_ context.Context, id uint64, updater func(*T) error) (*T, error) {
	var (
		result  *T
		renamed bool
	)

	update := func(txn *badger.Txn) error {
		old, err := s.read(txn, id)
		if err != nil {
			return err
		}
		oldKey := old.value.UniqueKey()

		updated := *old.value
		if updErr := updater(&updated); updErr != nil {
			return updErr
		}

		rec := s.wrap(&updated)
		base := rec.value.Base()
		base.ID = id
		base.CreatedAt = old.value.Base().CreatedAt
		base.UpdatedAt = time.Now()

		newKey := rec.value.UniqueKey()
		renamed = newKey != oldKey
		if renamed {
			exists, existsErr := s.repo.Exists(txn, uniqueKey(s.collection, newKey))
			if existsErr != nil {
				return existsErr
			}
			if exists {
				return fmt.Errorf("%w: %q", ErrAlreadyExists, newKey)
			}

			if rmErr := s.repo.DeleteIndexes(txn, old); rmErr != nil {
				return rmErr
			}
		}

		if wrErr := s.repo.Write(txn, rec); wrErr != nil {
			return wrErr
		}

		result = &updated
		return nil
	}

	var err error
	for range maxUpdateAttempts {
		if err = s.db.Update(update); !errors.Is(err, badger.ErrConflict) {
			break
		}
	}

	// A rename that keeps losing the race is racing for the same unique key.
	if errors.Is(err, badger.ErrConflict) && renamed {
		err = fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", s.collection, err)
	}

	return result, nil
}

// Delete implements Store.
func (s *badgerStore[T, PT]) Delete(_ context.Context, id uint64) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		old, err := s.read(txn, id)
		if err != nil {
			return err
		}

		return s.repo.Delete(txn, old)
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.collection, err)
	}

	return nil
}

func (s *badgerStore[T, PT]) read(txn *badger.Txn, id uint64) (*record[T, PT], error) {
	rec, err := s.repo.Read(txn, idKey(s.collection, id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s %d", ErrNotFound, s.collection, id)
	}
	if err != nil {
		return nil, err
	}

	return rec, nil
}
