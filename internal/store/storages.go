package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-wine-cellar/internal/config"
	"github.com/MKhiriev/go-wine-cellar/internal/logger"
)

// Storages bundles the repositories used by the service layer together with
// the connections that back them.
type Storages struct {
	WineRepository WineRepository

	closers []io.Closer
}

// NewStorages opens the configured backends.
//
// Without a DSN the catalog is kept in memory. With one, the database is
// opened and migrated. When a redis address is set, single-record reads go
// through a read-through cache.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	s := &Storages{}

	if cfg.DB.DSN == "" {
		log.Info().Str("func", "store.NewStorages").Msg("no database configured, keeping the catalog in memory")
		s.WineRepository = NewMemoryWineRepository()
	} else {
		db, err := NewConnect(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("error connecting database: %w", err)
		}
		s.closers = append(s.closers, db)

		if err = db.Migrate(ctx); err != nil {
			log.Err(err).Str("func", "store.NewStorages").Msg("error migrating database")
			return nil, errors.Join(err, s.Close())
		}

		s.WineRepository = NewWineRepository(db, log)
	}

	if cfg.Cache.RedisAddress != "" {
		client, err := NewRedisClient(ctx, cfg.Cache.RedisAddress, log)
		if err != nil {
			return nil, errors.Join(err, s.Close())
		}
		s.closers = append(s.closers, client)

		s.WineRepository = NewCachedWineRepository(s.WineRepository, NewRedisWineCache(client), cfg.Cache.TTL)
	}

	return s, nil
}

// Close releases every connection opened by [NewStorages].
func (s *Storages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil

	return errors.Join(errs...)
}
