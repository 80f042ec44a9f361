package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julianstephens/noteboard/internal/backup"
	"github.com/julianstephens/noteboard/internal/config"
	"github.com/julianstephens/noteboard/internal/constants"
	"github.com/julianstephens/noteboard/internal/controller"
	apperrors "github.com/julianstephens/noteboard/internal/errors"
	"github.com/julianstephens/noteboard/internal/keyring"
	"github.com/julianstephens/noteboard/internal/logger"
	"github.com/julianstephens/noteboard/internal/models"
	"github.com/julianstephens/noteboard/internal/notifier"
	"github.com/julianstephens/noteboard/internal/storage"
	"github.com/julianstephens/noteboard/internal/storage/postgres"
)

var (
	// ErrNoMatch is returned when a reference matches no note or habit.
	ErrNoMatch = errors.New("no match")
	// ErrAmbiguous is returned when a reference matches more than one.
	ErrAmbiguous = errors.New("ambiguous reference")
)

type Context struct {
	Store        storage.Provider
	Settings     config.Settings
	SettingsPath string
	Out          io.Writer
	In           io.Reader
	Err          io.Writer

	// Options overrides what Controller builds from Settings. Tests use it
	// to pin the clock and ids.
	Options *controller.Options

	ctrl *controller.Controller
}

// Controller loads the application state on first use.
func (c *Context) Controller() *controller.Controller {
	if c.ctrl != nil {
		return c.ctrl
	}
	opts := controller.Options{Columns: c.Settings.Columns()}
	if c.Options != nil {
		opts = *c.Options
	}
	if opts.Celebrator == nil && c.Options == nil && c.Settings.CelebrateEnabled() {
		opts.Celebrator = notifier.New()
	}
	c.ctrl = controller.New(c.Store, opts)
	c.ctrl.Load()
	for _, notice := range c.ctrl.TakeNotices() {
		apperrors.Warn(c.Stderr(), notice)
	}
	return c.ctrl
}

// Commit reports the most recent write that failed since the last call.
func (c *Context) Commit() error {
	if c.ctrl == nil {
		return nil
	}
	if err := c.ctrl.TakeWarning(); err != nil {
		return fmt.Errorf("changes were not saved: %w", err)
	}
	return nil
}

// Close waits for background work and closes the store.
func (c *Context) Close() error {
	if c.ctrl != nil {
		c.ctrl.Close()
	}
	return c.Store.Close()
}

func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Stderr() io.Writer {
	if c.Err == nil {
		return os.Stderr
	}
	return c.Err
}

func (c *Context) Stdin() io.Reader {
	if c.In == nil {
		return os.Stdin
	}
	return c.In
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Stdout(), format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Stdout(), args...)
}

// Confirm asks a y/N question on stdin.
func (c *Context) Confirm(prompt string) (bool, error) {
	c.Printf("%s [y/N]: ", prompt)
	response, err := bufio.NewReader(c.Stdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// PerformAutomaticBackup snapshots a SQLite store. Failures are logged and
// never interrupt the caller.
func (c *Context) PerformAutomaticBackup() {
	if !c.Settings.AutoBackupEnabled() {
		return
	}
	if _, ok := c.Store.(*storage.SQLiteStore); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil && !errors.Is(err, backup.ErrNoDatabase) {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ResolveStore picks the store location. An explicit flag wins, then
// NOTEBOARD_DB_CONNECTION or the keyring, then the settings file, then the
// default database path. Connection strings given as a flag or in the
// settings file must not carry a password.
func ResolveStore(flag string, settings config.Settings) (storage.Provider, error) {
	location, source := strings.TrimSpace(flag), "--config"
	if location == "" {
		if connStr, from, err := keyring.ResolveConnectionString(); err == nil {
			logger.Debug("Using connection string", "source", from)
			return storage.NewPostgresStore(connStr), nil
		}
		location, source = settings.Store, "settings file"
	}
	if location == "" {
		location, source = constants.DefaultConfigPath, "default"
	}

	if postgres.IsConnString(location) || strings.Contains(location, "host=") {
		if err := postgres.ValidateConnString(location); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("connection string from %s embeds a password; store it with '%s keyring set' or export %s instead",
					source, constants.AppName, constants.ConnectionEnvVar)
			}
			return nil, err
		}
	}
	logger.Debug("Using store", "location", location, "source", source)
	return storage.New(location), nil
}

// FindNote resolves ref to a note: an exact id, then an id prefix, then a
// case-insensitive title.
func FindNote(notes []models.Note, ref string) (models.Note, error) {
	ref = strings.TrimSpace(ref)
	var byPrefix, byTitle []models.Note
	for _, n := range notes {
		switch {
		case n.ID == ref:
			return n, nil
		case ref != "" && strings.HasPrefix(n.ID, ref):
			byPrefix = append(byPrefix, n)
		case strings.EqualFold(n.Title, ref):
			byTitle = append(byTitle, n)
		}
	}
	for _, matches := range [][]models.Note{byPrefix, byTitle} {
		switch len(matches) {
		case 0:
			continue
		case 1:
			return matches[0], nil
		default:
			return models.Note{}, fmt.Errorf("%w: %q matches %d notes, use the id", ErrAmbiguous, ref, len(matches))
		}
	}
	return models.Note{}, fmt.Errorf("%w: no note %q", ErrNoMatch, ref)
}

// FindHabit resolves ref the same way as FindNote, matching names.
func FindHabit(habits []models.Habit, ref string) (models.Habit, error) {
	ref = strings.TrimSpace(ref)
	var byPrefix, byName []models.Habit
	for _, h := range habits {
		switch {
		case h.ID == ref:
			return h, nil
		case ref != "" && strings.HasPrefix(h.ID, ref):
			byPrefix = append(byPrefix, h)
		case strings.EqualFold(h.Name, ref):
			byName = append(byName, h)
		}
	}
	for _, matches := range [][]models.Habit{byPrefix, byName} {
		switch len(matches) {
		case 0:
			continue
		case 1:
			return matches[0], nil
		default:
			return models.Habit{}, fmt.Errorf("%w: %q matches %d habits, use the id", ErrAmbiguous, ref, len(matches))
		}
	}
	return models.Habit{}, fmt.Errorf("%w: no habit %q", ErrNoMatch, ref)
}
