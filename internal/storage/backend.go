package storage

import (
	"errors"
	"fmt"
	"sync"

	"github.com/codebar/admin/pkg/badgerfx"
	"github.com/codebar/admin/pkg/gormfx"
	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const sequenceBandwidth = 100

// Backend holds the single database handle opened for the configured driver.
type Backend struct {
	driver Driver

	badger *badger.DB
	sql    *gorm.DB

	mux       sync.Mutex
	sequences []*badger.Sequence

	logger *zap.Logger
}

func NewBackend(config Config, logger *zap.Logger) (*Backend, error) {
	backend := &Backend{
		driver: config.Driver,
		logger: logger,
	}

	switch config.Driver {
	case DriverBadger, "":
		db, err := badgerfx.New(config.Badger, logger.Named("badger"))
		if err != nil {
			return nil, err
		}
		backend.driver = DriverBadger
		backend.badger = db
	case DriverSQLite, DriverMySQL, DriverPostgres:
		sqlConfig := config.SQL
		sqlConfig.Driver = gormfx.Driver(config.Driver)

		db, err := gormfx.New(sqlConfig, logger.Named("gorm"))
		if err != nil {
			return nil, err
		}
		backend.sql = db
	default:
		return nil, fmt.Errorf("unsupported storage driver: %q", config.Driver)
	}

	logger.Info("storage opened", zap.String("driver", string(backend.driver)))

	return backend, nil
}

// sequence returns a persistent id generator for the collection.
func (b *Backend) sequence(collection string) (*badger.Sequence, error) {
	seq, err := b.badger.GetSequence([]byte(collection+":seq"), sequenceBandwidth)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s sequence: %w", collection, err)
	}

	b.mux.Lock()
	b.sequences = append(b.sequences, seq)
	b.mux.Unlock()

	return seq, nil
}

// Close releases id leases and closes the database.
func (b *Backend) Close() error {
	var errs []error

	b.mux.Lock()
	for _, seq := range b.sequences {
		if err := seq.Release(); err != nil {
			errs = append(errs, fmt.Errorf("failed to release sequence: %w", err))
		}
	}
	b.sequences = nil
	b.mux.Unlock()

	if b.badger != nil {
		if err := b.badger.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close BadgerDB: %w", err))
		}
	}

	if b.sql != nil {
		if err := gormfx.Close(b.sql); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
