package consolidate

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem is the set of filesystem primitives a run depends on.
type FileSystem interface {
	WalkDir(root string, fn fs.WalkDirFunc) error
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	Create(path string) (io.WriteCloser, error)
}

// OSFS implements FileSystem using the local OS.
type OSFS struct{}

func (OSFS) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- paths come from walking the configured source directory.
	return os.ReadFile(path)
}

func (OSFS) Create(path string) (io.WriteCloser, error) {
	return os.Create(path)
}
