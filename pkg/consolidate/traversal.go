// File: pkg/consolidate/traversal.go
package consolidate

import (
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// visitFunc receives each entry that produces a block, in walk order.
// regular is false for entries that exist but cannot be read as plain files.
type visitFunc func(path string, regular bool) error

// walkSource traverses root depth-first in lexical order and calls visit once
// per file. Directories, and symlinks resolving to directories, produce no
// call and are not descended into through a link. The file at skipAbs, the
// absolute path of the output being written, is passed over.
func walkSource(fsys FileSystem, root, cwd, skipAbs string, logger *zap.Logger, visit visitFunc) error {
	logger.Debug("Starting traversal", zap.String("root", root))

	// A trailing separator makes the root Lstat resolve a symlinked source directory.
	walkRoot := root
	if !strings.HasSuffix(walkRoot, string(filepath.Separator)) {
		walkRoot += string(filepath.Separator)
	}

	return fsys.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unlistable directories are skipped, the rest of the walk continues.
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}

		if d.IsDir() {
			return nil
		}

		if absFrom(cwd, path) == skipAbs {
			logger.Debug("Skipping output file found inside source tree", zap.String("path", path))
			return nil
		}

		mode := d.Type()
		if mode&fs.ModeSymlink != 0 {
			target, statErr := fsys.Stat(path)
			if statErr != nil {
				// Broken link: let the reader report it inline.
				return visit(path, true)
			}
			if target.IsDir() {
				logger.Debug("Not following directory symlink", zap.String("path", path))
				return nil
			}
			return visit(path, target.Mode().IsRegular())
		}

		return visit(path, mode.IsRegular())
	})
}

// absFrom resolves path against cwd without consulting the process state.
func absFrom(cwd, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(cwd, path)
}

// relativeToCwd mirrors os.path.relpath: the cleaned path of p relative to
// cwd, falling back to the absolute path when no relative form exists.
func relativeToCwd(cwd, p string) string {
	abs := absFrom(cwd, p)
	rel, err := filepath.Rel(cwd, abs)
	if err != nil {
		return abs
	}
	return rel
}
