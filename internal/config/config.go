// Package config reads the optional YAML settings file. Command-line flags
// take precedence over anything set here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/noteboard/internal/constants"
	"github.com/julianstephens/noteboard/internal/models"
	"github.com/julianstephens/noteboard/internal/utils"
)

type Settings struct {
	// Store is a database path, a *.json path or a PostgreSQL connection
	// string without a password.
	Store         string   `yaml:"store"`
	Debug         bool     `yaml:"debug"`
	Celebrate     *bool    `yaml:"celebrate"`
	AutoBackup    *bool    `yaml:"auto_backup"`
	ExportDir     string   `yaml:"export_dir"`
	KanbanColumns []string `yaml:"kanban_columns"`
}

func Default() Settings {
	return Settings{}
}

// Path returns NOTEBOARD_SETTINGS when set, otherwise config.yaml in the
// default settings directory.
func Path() string {
	if p := os.Getenv(constants.SettingsEnvVar); p != "" {
		return utils.ExpandHome(p)
	}
	return filepath.Join(utils.ExpandHome(constants.DefaultSettingsDir), constants.SettingsFileName)
}

// Load reads the settings at path. A missing file yields the defaults.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("failed to read config file (%s): %w", path, err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	s.Store = utils.ExpandHome(strings.TrimSpace(s.Store))
	s.ExportDir = utils.ExpandHome(strings.TrimSpace(s.ExportDir))
	return s, nil
}

// Save writes s to path, creating the directory if needed.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// CelebrateEnabled defaults to true.
func (s Settings) CelebrateEnabled() bool {
	return s.Celebrate == nil || *s.Celebrate
}

// AutoBackupEnabled defaults to true.
func (s Settings) AutoBackupEnabled() bool {
	return s.AutoBackup == nil || *s.AutoBackup
}

// Columns returns the board columns. Known statuses may be written in any
// accepted spelling; anything else is kept verbatim as a custom column.
// Without configuration the standard three columns are used.
func (s Settings) Columns() []models.Status {
	if len(s.KanbanColumns) == 0 {
		return models.KanbanColumns
	}

	cols := make([]models.Status, 0, len(s.KanbanColumns))
	for _, c := range s.KanbanColumns {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if st, err := models.ParseStatus(c); err == nil {
			cols = append(cols, st)
		} else {
			cols = append(cols, models.Status(c))
		}
	}
	if len(cols) == 0 {
		return models.KanbanColumns
	}
	return cols
}
