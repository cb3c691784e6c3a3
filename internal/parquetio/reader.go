package parquetio

import (
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
)

// Reader wraps a parquet GenericReader for streaming typed records.
type Reader[T any] struct {
	file   *os.File
	pf     *parquet.File
	reader *parquet.GenericReader[T]
}

// Open opens a Parquet file and returns a streaming Reader.
func Open[T any](path string) (*Reader[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	r := parquet.NewGenericReader[T](pf)
	return &Reader[T]{file: f, pf: pf, reader: r}, nil
}

// NumRows returns the total number of rows in the Parquet file.
func (r *Reader[T]) NumRows() int64 {
	return r.reader.NumRows()
}

// Read reads up to len(rows) records into the provided slice.
// Returns the number of rows read and io.EOF when done.
func (r *Reader[T]) Read(rows []T) (int, error) {
	n, err := r.reader.Read(rows)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("read parquet rows: %w", err)
	}
	return n, err
}

// ReadN reads at most limit records, stopping early at end of file.
func (r *Reader[T]) ReadN(limit int) ([]T, error) {
	out := make([]T, 0, limit)
	buf := make([]T, min(limit, 256))
	for len(out) < limit {
		want := min(len(buf), limit-len(out))
		n, err := r.Read(buf[:want])
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

// Schema returns the schema stored in the file, not the one of T, so
// validation sees the columns actually present.
func (r *Reader[T]) Schema() *parquet.Schema {
	return r.pf.Schema()
}

// Close releases all resources.
func (r *Reader[T]) Close() error {
	if err := r.reader.Close(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}
