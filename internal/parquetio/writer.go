package parquetio

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
)

// Writer streams typed records into a new Parquet file.
type Writer[T any] struct {
	file    *os.File
	writer  *parquet.GenericWriter[T]
	written int64
}

// Create truncates or creates the file at path and returns a Writer for it.
func Create[T any](path string) (*Writer[T], error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create parquet file: %w", err)
	}
	return &Writer[T]{file: f, writer: parquet.NewGenericWriter[T](f)}, nil
}

// Write appends rows to the file.
func (w *Writer[T]) Write(rows []T) error {
	n, err := w.writer.Write(rows)
	w.written += int64(n)
	if err != nil {
		return fmt.Errorf("write parquet rows: %w", err)
	}
	return nil
}

// Written returns the number of rows written so far.
func (w *Writer[T]) Written() int64 {
	return w.written
}

// Close flushes the footer and closes the file.
func (w *Writer[T]) Close() error {
	if err := w.writer.Close(); err != nil {
		w.file.Close()
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return w.file.Close()
}
