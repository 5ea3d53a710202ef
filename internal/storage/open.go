// internal/storage/open.go
package storage

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/sku-generator/internal/config"
	"github.com/javajoker/sku-generator/internal/database"
)

// Open builds the Store selected by cfg.Storage.Driver. The returned cleanup
// releases the store and any connection it owns.
func Open(cfg *config.Config) (Store, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		s := NewMemoryStore()
		return s, func() { s.Close() }, nil

	case config.StorageDriverFile:
		s, err := NewFileStore(cfg.Storage.FileDir)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil

	case config.StorageDriverPostgres, config.StorageDriverSQLite:
		db, err := database.Initialize(cfg.Storage.Driver, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := database.RunMigrations(db); err != nil {
			database.Close(db)
			return nil, nil, err
		}
		return NewDatabaseStore(db), func() { database.Close(db) }, nil

	case config.StorageDriverRedis:
		s := NewRedisStore(RedisOptions{
			Addr:       cfg.Redis.Addr(),
			Password:   cfg.Redis.Password,
			DB:         cfg.Redis.DB,
			MaxRetries: cfg.Redis.MaxRetries,
		})
		return s, func() {
			if err := s.Close(); err != nil {
				logrus.WithError(err).Error("Error closing redis connection")
			}
		}, nil
	}

	return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
}
