// Package testutil provides common test helpers for the dstack project.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/spf13/afero"
)

// MemWorkDir is an in-memory working directory backed by an afero.Fs.
// Chdir fails unless the target is an existing directory in Fs.
type MemWorkDir struct {
	Fs  afero.Fs
	Dir string

	// FailChdir forces Chdir to the given path to fail with the mapped error.
	FailChdir map[string]error
}

// NewMemWorkDir creates a MemWorkDir positioned at dir.
func NewMemWorkDir(fsys afero.Fs, dir string) *MemWorkDir {
	return &MemWorkDir{Fs: fsys, Dir: dir, FailChdir: make(map[string]error)}
}

// Getwd returns the current directory.
func (w *MemWorkDir) Getwd() (string, error) {
	return w.Dir, nil
}

// Chdir moves to dir if it exists and is a directory.
func (w *MemWorkDir) Chdir(dir string) error {
	if err, ok := w.FailChdir[dir]; ok {
		return &fs.PathError{Op: "chdir", Path: dir, Err: err}
	}
	info, err := w.Fs.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "chdir", Path: dir, Err: syscall.ENOTDIR}
	}
	w.Dir = dir
	return nil
}

// MkdirAll creates each directory in fsys or fails the test.
func MkdirAll(t *testing.T, fsys afero.Fs, dirs ...string) {
	t.Helper()

	for _, d := range dirs {
		if err := fsys.MkdirAll(d, 0755); err != nil {
			t.Fatalf("MkdirAll: %s: %v", d, err)
		}
	}
}

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}

// SetupTestConfig creates a temporary config.toml that limits temporary drives
// to Z, Y, X and W and turns auto_pushd on. Returns the config file path.
func SetupTestConfig(t *testing.T) string {
	t.Helper()

	content := `version = 1
search_path = ["/projects"]
auto_pushd = true
pushd_silent = true
dirstack_size = 20
temp_drives = "ZYXW"
unc_policy = "deny"
log_level = "disabled"
`
	return TempConfigFile(t, content)
}
