package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/sku-generator/internal/config"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		driver string
		want   any
	}{
		{config.StorageDriverMemory, &MemoryStore{}},
		{config.StorageDriverFile, &FileStore{}},
		{config.StorageDriverSQLite, &DatabaseStore{}},
		{config.StorageDriverRedis, &RedisStore{}},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			cfg := &config.Config{
				Storage:  config.StorageConfig{Driver: tt.driver, Key: "k", FileDir: filepath.Join(dir, "files")},
				Database: config.DatabaseConfig{SQLitePath: filepath.Join(dir, "kv.db"), LogLevel: "silent"},
				Redis:    config.RedisConfig{Host: "localhost", Port: "6379"},
			}

			s, cleanup, err := Open(cfg)
			require.NoError(t, err)
			defer cleanup()
			assert.IsType(t, tt.want, s)
		})
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	_, _, err := Open(&config.Config{Storage: config.StorageConfig{Driver: "tape"}})
	assert.Error(t, err)
}
