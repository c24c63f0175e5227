// Package consolidate flattens a directory tree into a single text file,
// one delimited block per file.
package consolidate

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Consolidator performs consolidation runs against a FileSystem.
type Consolidator struct {
	fs     FileSystem
	logger *zap.Logger
}

// New returns a Consolidator. A nil fsys uses OSFS and a nil logger discards output.
func New(fsys FileSystem, logger *zap.Logger) *Consolidator {
	if fsys == nil {
		fsys = OSFS{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consolidator{fs: fsys, logger: logger}
}

// Consolidate runs a consolidation on the local filesystem.
func Consolidate(opts Options, logger *zap.Logger) (Summary, error) {
	return New(OSFS{}, logger).Run(opts)
}

// Run walks opts.SourceDir and writes every file it finds into opts.OutputFile.
//
// A missing or non-directory source yields a *MissingSourceDirectoryError and
// leaves the output untouched. Per-file read failures are written inline and
// counted in Summary.Failed. Any failure creating, writing or closing the
// output is returned.
func (c *Consolidator) Run(opts Options) (sum Summary, err error) {
	startTime := time.Now()
	opts = opts.withDefaults()
	logger := c.logger.With(
		zap.String("sourceDir", opts.SourceDir),
		zap.String("outputFile", opts.OutputFile),
	)

	info, statErr := c.fs.Stat(opts.SourceDir)
	if statErr != nil || !info.IsDir() {
		logger.Warn("Source directory not found", zap.Error(statErr))
		return Summary{}, &MissingSourceDirectoryError{Dir: opts.SourceDir, Err: statErr}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return Summary{}, fmt.Errorf("failed to get current directory: %w", err)
	}

	out, err := c.fs.Create(opts.OutputFile)
	if err != nil {
		logger.Error("Failed to create output file", zap.Error(err))
		return Summary{}, fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.Error(closeErr))
			multierr.AppendInto(&err, fmt.Errorf("failed to close output file: %w", closeErr))
		}
	}()

	logger.Info("Starting consolidation")

	w := newBlockWriter(out)
	walkErr := walkSource(c.fs, opts.SourceDir, cwd, absFrom(cwd, opts.OutputFile), logger,
		func(path string, regular bool) error {
			rec := readRecord(c.fs, path, cwd, regular, logger)
			if rec.Err != nil {
				sum.Failed++
				logger.Warn("Failed to read file", zap.String("filePath", path), zap.Error(rec.Err))
			}
			sum.Files++
			return w.WriteRecord(rec)
		})
	if walkErr != nil {
		logger.Error("Failed to write consolidated output", zap.Error(walkErr))
		return sum, fmt.Errorf("failed to consolidate %s: %w", opts.SourceDir, walkErr)
	}

	if err := w.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.Error(err))
		return sum, err
	}

	logger.Info("Consolidation completed",
		zap.Int("files", sum.Files),
		zap.Int("failed", sum.Failed),
		zap.Duration("elapsed", time.Since(startTime)),
	)
	return sum, nil
}
