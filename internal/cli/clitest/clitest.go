// Package clitest builds command contexts backed by a temporary store.
package clitest

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/noteboard/internal/cli"
	"github.com/julianstephens/noteboard/internal/controller"
	"github.com/julianstephens/noteboard/internal/storage"
)

// Now is the fixed clock every test context runs on.
var Now = time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

// NewContext returns a context over a fresh JSON store holding the welcome
// notes. New ids are "new-1", "new-2" and so on. Output is captured in the
// returned buffer and stdin reads from input.
func NewContext(t *testing.T, input string) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "store.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	return WithStore(t, store, input)
}

// WithStore is NewContext over an existing store.
func WithStore(t *testing.T, store storage.Provider, input string) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	n := 0
	out := &bytes.Buffer{}
	ctx := &cli.Context{
		Store: store,
		Out:   out,
		In:    strings.NewReader(input),
		Options: &controller.Options{
			Clock: func() time.Time { return Now },
			NewID: func() string {
				n++
				return fmt.Sprintf("new-%d", n)
			},
		},
	}
	t.Cleanup(func() { _ = ctx.Close() })
	return ctx, out
}
