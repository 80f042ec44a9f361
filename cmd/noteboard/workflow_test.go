package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestEndToEndWorkflow builds the binary and drives it the way a user
// would, against an isolated home directory.
func TestEndToEndWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end-to-end test in short mode")
	}
	goBin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go toolchain not on PATH")
	}

	tempDir := t.TempDir()
	cliPath := filepath.Join(tempDir, "noteboard-cli")
	build := exec.Command(goBin, "build", "-o", cliPath, ".")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build CLI: %v\nOutput: %s", err, out)
	}

	var env []string
	for _, e := range os.Environ() {
		if !strings.HasPrefix(e, "HOME=") && !strings.HasPrefix(e, "NOTEBOARD_") && !strings.HasPrefix(e, "XDG_CONFIG_HOME=") {
			env = append(env, e)
		}
	}
	env = append(env,
		fmt.Sprintf("HOME=%s", tempDir),
		fmt.Sprintf("XDG_CONFIG_HOME=%s", tempDir),
		fmt.Sprintf("NOTEBOARD_CONFIG=%s", filepath.Join(tempDir, "noteboard", "noteboard.db")),
		fmt.Sprintf("NOTEBOARD_SETTINGS=%s", filepath.Join(tempDir, "noteboard", "config.yaml")),
	)

	out := runCmd(t, cliPath, env, "init")
	expectContains(t, out, "Initialized noteboard storage")
	if _, err := os.Stat(filepath.Join(tempDir, "noteboard", "config.yaml")); err != nil {
		t.Fatalf("settings file not written: %v", err)
	}

	runCmd(t, cliPath, env, "note", "add", "Write report", "--priority", "high", "--deadline", "2000-01-01")
	out = runCmd(t, cliPath, env, "note", "list", "--overdue")
	expectContains(t, out, "Write report")

	out = runCmd(t, cliPath, env, "note", "status", "write report", "completed")
	expectContains(t, out, "🎉 Completed: Write report")

	out = runCmd(t, cliPath, env, "note", "move", "write report", "eliminate")
	expectContains(t, out, "Eliminate")

	runCmd(t, cliPath, env, "habit", "add", "Read")
	runCmd(t, cliPath, env, "habit", "toggle", "read", "--day", "2025-01-02")
	out = runCmd(t, cliPath, env, "habit", "log", "--month", "2025-01")
	expectContains(t, out, "January 2025")
	expectContains(t, out, "Read")

	runCmd(t, cliPath, env, "view", "set", "matrix")
	out = runCmd(t, cliPath, env, "view", "get")
	expectContains(t, out, "Matrix")

	out = runCmd(t, cliPath, env, "export", "--stdout")
	if !strings.HasPrefix(out, "id,title,content,status") {
		t.Errorf("unexpected export header: %q", out)
	}

	out = runCmd(t, cliPath, env, "backup", "create")
	expectContains(t, out, "Backup created")
	out = runCmd(t, cliPath, env, "backup", "list")
	expectContains(t, out, "noteboard-")

	out = runCmd(t, cliPath, env, "doctor")
	expectContains(t, out, "All checks passed.")

	// Unknown references fail with the standard error prefix.
	cmd := exec.Command(cliPath, "note", "show", "no such note")
	cmd.Env = env
	failed, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("expected note show to fail, got: %s", failed)
	}
	expectContains(t, string(failed), "Error: ")
}

func runCmd(t *testing.T, path string, env []string, args ...string) string {
	t.Helper()
	cmd := exec.Command(path, args...)
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Command %s %v failed: %v\nOutput: %s", path, args, err, out)
	}
	return string(out)
}

func expectContains(t *testing.T, out, want string) {
	t.Helper()
	if !strings.Contains(out, want) {
		t.Fatalf("expected output to contain %q, got:\n%s", want, out)
	}
}
