package db

import (
	"context"
	"errors"
	"testing"

	"github.com/gyeh/datenorm/internal/model"
)

func TestChannelSource_Drains(t *testing.T) {
	ch := make(chan *model.NormalizedRow, 2)
	ch <- &model.NormalizedRow{RowNumber: 1, FieldOrder: "ymd"}
	ch <- &model.NormalizedRow{RowNumber: 2, FieldOrder: "dmy"}
	close(ch)

	src := NewChannelSource[*model.NormalizedRow](context.Background(), ch)
	var got []int64
	for src.Next() {
		vals, err := src.Values()
		if err != nil {
			t.Fatalf("Values: %v", err)
		}
		if len(vals) != len(model.StagingColumns()) {
			t.Fatalf("Values: got %d values, want %d", len(vals), len(model.StagingColumns()))
		}
		got = append(got, vals[2].(int64))
	}
	if src.Err() != nil {
		t.Errorf("Err: %v", src.Err())
	}
	if src.Rows() != 2 || len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("unexpected rows: count=%d values=%v", src.Rows(), got)
	}
}

func TestChannelSource_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ch := make(chan *model.NormalizedRow)
	src := NewChannelSource[*model.NormalizedRow](ctx, ch)
	if src.Next() {
		t.Fatal("expected Next to stop on a cancelled context")
	}
	if !errors.Is(src.Err(), context.Canceled) {
		t.Errorf("Err = %v, want context.Canceled", src.Err())
	}
}
