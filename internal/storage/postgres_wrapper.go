package storage

import (
	"database/sql"
	"errors"

	"github.com/julianstephens/noteboard/internal/storage/postgres"
)

// PostgresStore adapts postgres.Store to Provider.
type PostgresStore struct {
	store *postgres.Store
}

// NewPostgresStore creates a store for connStr. Validation of the
// connection string is left to the caller.
func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{store: postgres.New(connStr)}
}

func (s *PostgresStore) Init() error                  { return s.store.Init() }
func (s *PostgresStore) Load() error                  { return s.store.Load() }
func (s *PostgresStore) Close() error                 { return s.store.Close() }
func (s *PostgresStore) GetConfigPath() string        { return s.store.GetConfigPath() }
func (s *PostgresStore) Keys() ([]string, error)      { return s.store.Keys() }
func (s *PostgresStore) Put(k string, v []byte) error { return s.store.Put(k, v) }

func (s *PostgresStore) Get(key string) ([]byte, error) {
	v, err := s.store.Get(key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return v, err
}
