package db

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/gyeh/datenorm/internal/model"
)

// Row is anything that can render itself in COPY column order.
type Row interface {
	CopyValues() []any
}

// ChannelSource implements pgx.CopyFromSource by reading rows from a channel.
// The bounded channel gives backpressure between the Parquet reader and COPY.
type ChannelSource[T Row] struct {
	ctx     context.Context
	ch      <-chan T
	current T
	rows    int64
	err     error
}

// NewChannelSource creates a CopyFromSource backed by a channel. Cancelling
// ctx ends the stream with an error so COPY aborts instead of committing a
// partial batch.
func NewChannelSource[T Row](ctx context.Context, ch <-chan T) *ChannelSource[T] {
	return &ChannelSource[T]{ctx: ctx, ch: ch}
}

// Next advances to the next row. Returns false when the channel is closed
// or the context is done.
func (s *ChannelSource[T]) Next() bool {
	select {
	case row, ok := <-s.ch:
		if !ok {
			return false
		}
		s.current = row
		s.rows++
		return true
	case <-s.ctx.Done():
		s.err = s.ctx.Err()
		return false
	}
}

// Values returns the current row's values in COPY column order.
func (s *ChannelSource[T]) Values() ([]any, error) {
	return s.current.CopyValues(), nil
}

// Err returns the context error if iteration was cut short.
func (s *ChannelSource[T]) Err() error {
	return s.err
}

// Rows returns how many rows have been handed to COPY.
func (s *ChannelSource[T]) Rows() int64 {
	return s.rows
}

var _ pgx.CopyFromSource = (*ChannelSource[*model.NormalizedRow])(nil)
