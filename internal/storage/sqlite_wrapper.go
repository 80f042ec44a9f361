package storage

import (
	"database/sql"
	"errors"

	"github.com/julianstephens/noteboard/internal/storage/sqlite"
)

// SQLiteStore adapts sqlite.Store to Provider.
type SQLiteStore struct {
	store *sqlite.Store
}

// NewSQLiteStore creates a new SQLite store
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{store: sqlite.NewStore(path)}
}

func (s *SQLiteStore) Init() error                  { return s.store.Init() }
func (s *SQLiteStore) Load() error                  { return s.store.Load() }
func (s *SQLiteStore) Close() error                 { return s.store.Close() }
func (s *SQLiteStore) GetConfigPath() string        { return s.store.GetConfigPath() }
func (s *SQLiteStore) GetDB() *sql.DB               { return s.store.GetDB() }
func (s *SQLiteStore) Keys() ([]string, error)      { return s.store.Keys() }
func (s *SQLiteStore) Put(k string, v []byte) error { return s.store.Put(k, v) }

func (s *SQLiteStore) Get(key string) ([]byte, error) {
	v, err := s.store.Get(key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return v, err
}
