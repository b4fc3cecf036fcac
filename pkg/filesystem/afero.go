package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// NewOS returns the real filesystem
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// NewMemory returns an empty in-memory filesystem
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}

// Lstat stats without following a trailing symlink when the filesystem
// supports it.
func Lstat(fsys afero.Fs, name string) (fs.FileInfo, error) {
	if l, ok := fsys.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(name)
		return info, err
	}
	return fsys.Stat(name)
}

// IsDir reports whether name exists and is a directory
func IsDir(fsys afero.Fs, name string) (bool, error) {
	info, err := fsys.Stat(name)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// ChildNames lists the names of the immediate children of dir
func ChildNames(fsys afero.Fs, dir string) ([]string, error) {
	f, err := fsys.Open(dir)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return f.Readdirnames(-1)
}

// Abs makes path absolute and clean. Only the OS filesystem has a working
// directory; other filesystems resolve relative paths from "/".
func Abs(fsys afero.Fs, path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	if _, ok := fsys.(*afero.OsFs); ok {
		return filepath.Abs(path)
	}
	return filepath.Join(string(filepath.Separator), path), nil
}
