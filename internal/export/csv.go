// Package export writes the note collection as CSV.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/noteboard/internal/constants"
	"github.com/julianstephens/noteboard/internal/models"
)

// ErrNoNotes is returned when there is nothing to export.
var ErrNoNotes = errors.New("no notes to export")

// Columns is the fixed header row.
var Columns = []string{"id", "title", "content", "status", "priority", "effort", "deadline", "createdAt", "updatedAt"}

// timestampFormat is ISO-8601 in UTC with millisecond precision.
const timestampFormat = "2006-01-02T15:04:05.000Z07:00"

// escapeField trims s and quotes it only when it holds a comma, a double
// quote or a newline. Embedded quotes are doubled.
func escapeField(s string) string {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

func row(n models.Note) []string {
	deadline := ""
	if n.Deadline != nil {
		deadline = *n.Deadline
	}
	return []string{
		n.ID,
		n.Title,
		n.Content,
		string(n.Status),
		string(n.Priority),
		string(n.Effort),
		deadline,
		n.CreatedAt.UTC().Format(timestampFormat),
		n.UpdatedAt.UTC().Format(timestampFormat),
	}
}

func joinRow(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = escapeField(f)
	}
	return strings.Join(escaped, ",")
}

// Write renders notes in collection order. Rows are separated by "\n" with
// no trailing newline.
func Write(w io.Writer, notes []models.Note) error {
	if len(notes) == 0 {
		return ErrNoNotes
	}

	lines := make([]string, 0, len(notes)+1)
	lines = append(lines, joinRow(Columns))
	for _, n := range notes {
		lines = append(lines, joinRow(row(n)))
	}

	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// Filename is the default export name for the UTC day of now.
func Filename(now time.Time) string {
	return constants.ExportFilePrefix + now.UTC().Format(constants.DateFormat) + constants.ExportFileSuffix
}

// ToFile writes notes to Filename(now) inside dir and returns the path.
func ToFile(dir string, notes []models.Note, now time.Time) (string, error) {
	if len(notes) == 0 {
		return "", ErrNoNotes
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, Filename(now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := Write(f, notes); err != nil {
		return "", err
	}
	return path, f.Sync()
}
