package storage

import (
	"strings"

	"github.com/julianstephens/noteboard/internal/storage/postgres"
	"github.com/julianstephens/noteboard/internal/utils"
)

// New picks a backend for config: a PostgreSQL URL or DSN selects
// PostgresStore, a *.json path selects JSONStore, anything else is a SQLite
// database path. Nothing is opened until Load or Init.
func New(config string) Provider {
	switch {
	case postgres.IsConnString(config) || strings.Contains(config, "host="):
		return NewPostgresStore(config)
	case strings.HasSuffix(strings.ToLower(config), ".json"):
		return NewJSONStore(utils.ExpandHome(config))
	default:
		return NewSQLiteStore(utils.ExpandHome(config))
	}
}
