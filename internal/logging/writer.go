package logging

import (
	"fmt"
	"io"
)

// RecordWriter writes encoded records one per line and flushes after each
// write when the destination supports it.
type RecordWriter struct {
	output io.Writer
	format Format
}

// NewRecordWriter creates a new record writer
func NewRecordWriter(output io.Writer, format Format) *RecordWriter {
	return &RecordWriter{output: output, format: format}
}

// Write encodes and writes a single record
func (rw *RecordWriter) Write(rec *Record) error {
	line, err := Encode(rec, rw.format)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	line = append(line, '\n')
	if _, err := rw.output.Write(line); err != nil {
		return err
	}
	// Try to flush if possible
	if f, ok := rw.output.(interface{ Sync() error }); ok {
		f.Sync()
	}
	return nil
}
