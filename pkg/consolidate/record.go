package consolidate

import (
	"io/fs"
	"unicode/utf8"

	"go.uber.org/zap"
)

// readRecord builds the FileRecord for one visited file. Failures are carried
// in the record rather than returned so a single bad file never stops a run.
func readRecord(fsys FileSystem, path, cwd string, regular bool, logger *zap.Logger) FileRecord {
	rec := FileRecord{Path: relativeToCwd(cwd, path)}

	if !regular {
		rec.Err = &fs.PathError{Op: "read", Path: path, Err: ErrNotRegular}
		return rec
	}

	logger.Debug("Reading file content", zap.String("filePath", path))

	data, err := fsys.ReadFile(path)
	if err != nil {
		rec.Err = err
		return rec
	}

	if off, ok := firstInvalidUTF8(data); !ok {
		rec.Err = &fs.PathError{
			Op:   "decode",
			Path: path,
			Err:  &InvalidEncodingError{Offset: off, Byte: data[off]},
		}
		return rec
	}

	logger.Debug("Successfully read file content",
		zap.String("filePath", path),
		zap.Int("contentSizeBytes", len(data)))

	rec.Content = string(data)
	return rec
}

// firstInvalidUTF8 reports the offset of the first invalid UTF-8 sequence.
// ok is true when data is entirely valid.
func firstInvalidUTF8(data []byte) (offset int, ok bool) {
	if utf8.Valid(data) {
		return 0, true
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i, false
		}
		i += size
	}
	return 0, true
}
