package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/javajoker/sku-generator/internal/models"
)

// StoreTestSuite runs the same get/set contract against every backend.
type StoreTestSuite struct {
	suite.Suite
	newStore func(t *testing.T) Store
	store    Store
}

func (suite *StoreTestSuite) SetupTest() {
	suite.store = suite.newStore(suite.T())
}

func (suite *StoreTestSuite) TearDownTest() {
	suite.NoError(suite.store.Close())
}

func (suite *StoreTestSuite) TestMissingKey() {
	_, err := suite.store.Get(context.Background(), "skuGenerator")
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *StoreTestSuite) TestSetThenGet() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Set(ctx, "skuGenerator", []byte(`{"products":[]}`)))
	got, err := suite.store.Get(ctx, "skuGenerator")
	suite.Require().NoError(err)
	suite.Equal(`{"products":[]}`, string(got))
}

func (suite *StoreTestSuite) TestOverwrite() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Set(ctx, "skuGenerator", []byte("first")))
	suite.Require().NoError(suite.store.Set(ctx, "skuGenerator", []byte("second")))
	suite.Require().NoError(suite.store.Set(ctx, "other", []byte("third")))

	got, err := suite.store.Get(ctx, "skuGenerator")
	suite.Require().NoError(err)
	suite.Equal("second", string(got))
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, &StoreTestSuite{newStore: func(t *testing.T) Store {
		return NewMemoryStore()
	}})
}

func TestFileStoreSuite(t *testing.T) {
	suite.Run(t, &StoreTestSuite{newStore: func(t *testing.T) Store {
		s, err := NewFileStore(t.TempDir())
		require.NoError(t, err)
		return s
	}})
}

func TestDatabaseStoreSuite(t *testing.T) {
	suite.Run(t, &StoreTestSuite{newStore: func(t *testing.T) Store {
		db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		require.NoError(t, err)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		sqlDB.SetMaxOpenConns(1)
		t.Cleanup(func() { sqlDB.Close() })

		require.NoError(t, db.AutoMigrate(&models.KVEntry{}))
		return NewDatabaseStore(db)
	}})
}

func TestFileStoreSanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set(context.Background(), "../escape/key", []byte("x")))

	_, err = os.Stat(filepath.Join(dir, ".._escape_key.json"))
	assert.NoError(t, err)
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := NewMemoryStore()
	value := []byte("abc")
	require.NoError(t, s.Set(context.Background(), "k", value))
	value[0] = 'z'

	got, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[0] = 'y'
	again, _ := s.Get(context.Background(), "k")
	assert.Equal(t, "abc", string(again))
}

var errBoom = errors.New("boom")
