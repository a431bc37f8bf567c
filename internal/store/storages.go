package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-foodmap/internal/config"
	"github.com/MKhiriev/go-foodmap/internal/logger"
)

// Storages bundles every persistence dependency of the services.
type Storages struct {
	IdentityRepository IdentityRepository
	ProfileCache       ProfileCache

	closers []io.Closer
}

// NewStorages connects the database, applies migrations, and connects the
// profile cache when a Redis URL is configured.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	storages := &Storages{
		IdentityRepository: NewIdentityRepository(db, log),
		ProfileCache:       NewNopProfileCache(),
		closers:            []io.Closer{db},
	}

	if cfg.Cache.RedisURL != "" {
		client, err := NewRedisClient(ctx, cfg.Cache, log)
		if err != nil {
			_ = storages.Close()
			return nil, err
		}
		storages.ProfileCache = NewRedisProfileCache(client, cfg.Cache.TTL, log)
		storages.closers = append(storages.closers, client)
	}

	return storages, nil
}

// Close releases every connection pool held by s.
func (s *Storages) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
