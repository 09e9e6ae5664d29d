package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes data under dir and returns the full path
func WriteFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// IsolateHome points HOME at a fresh temp dir so no user config leaks in
func IsolateHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	for _, key := range []string{"EXOQUERY_BACKEND_URL", "EXOQUERY_TIMEOUT", "EXOQUERY_LOCALE", "EXOQUERY_NO_COLOR"} {
		t.Setenv(key, "")
	}
	return dir
}
