package consolidate

import (
	"bufio"
	"fmt"
	"io"
)

const (
	delimiter    = "---"
	headerPrefix = "File Directory: "
)

// blockWriter renders FileRecords into the consolidated format.
type blockWriter struct {
	w *bufio.Writer
}

func newBlockWriter(out io.Writer) *blockWriter {
	return &blockWriter{w: bufio.NewWriter(out)}
}

// WriteRecord writes one block:
//
//	---
//	File Directory: <path>
//	<content, or [Error reading file: <err>] and a newline>
//	(newline)
//	---
func (b *blockWriter) WriteRecord(rec FileRecord) error {
	if _, err := fmt.Fprintf(b.w, "%s\n%s%s\n", delimiter, headerPrefix, rec.Path); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", rec.Path, err)
	}

	var err error
	if rec.Err != nil {
		_, err = fmt.Fprintf(b.w, "[Error reading file: %v]\n", rec.Err)
	} else {
		_, err = b.w.WriteString(rec.Content)
	}
	if err != nil {
		return fmt.Errorf("failed to write content for %s: %w", rec.Path, err)
	}

	if _, err := b.w.WriteString("\n" + delimiter + "\n"); err != nil {
		return fmt.Errorf("failed to write trailer for %s: %w", rec.Path, err)
	}
	return nil
}

// Flush pushes buffered blocks to the underlying writer.
func (b *blockWriter) Flush() error {
	if err := b.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
