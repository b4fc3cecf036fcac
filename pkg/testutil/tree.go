package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// FileTree represents a nested file structure for declarative test setup.
// A string value is a file with that content, a FileTree value a directory.
type FileTree map[string]interface{}

// NewMemFS returns an in-memory filesystem holding tree under root
func NewMemFS(t testing.TB, root string, tree FileTree) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll(root, 0755); err != nil {
		t.Fatalf("Failed to create root %s: %v", root, err)
	}
	CreateFileTree(t, fs, root, tree)
	return fs
}

// CreateFileTree recursively creates tree under basePath
func CreateFileTree(t testing.TB, fs afero.Fs, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := fs.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
				t.Fatalf("Failed to create directory for %s: %v", fullPath, err)
			}
			if err := afero.WriteFile(fs, fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			if err := fs.MkdirAll(fullPath, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			CreateFileTree(t, fs, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}

// Exists reports whether path exists on fs
func Exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}
