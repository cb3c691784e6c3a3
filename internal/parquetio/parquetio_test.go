package parquetio

import (
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/datenorm/internal/model"
)

func strPtr(s string) *string { return &s }
func int64Ptr(v int64) *int64 { return &v }

func writeSource(t *testing.T, rows []model.SourceRow) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.parquet")
	w, err := Create[model.SourceRow](path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := w.Write(rows); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if w.Written() != int64(len(rows)) {
		t.Errorf("Written: got %d, want %d", w.Written(), len(rows))
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return path
}

func TestRoundTrip(t *testing.T) {
	rows := []model.SourceRow{
		{RowID: int64Ptr(1), Value: strPtr("28/02/1998")},
		{RowID: int64Ptr(2), Value: nil},
		{RowID: nil, Value: strPtr("2023-08-29T19:34:39.678Z")},
	}
	path := writeSource(t, rows)

	r, err := Open[model.SourceRow](path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	if r.NumRows() != 3 {
		t.Fatalf("NumRows: got %d, want 3", r.NumRows())
	}
	if err := ValidateSchema(r.Schema()); err != nil {
		t.Fatalf("ValidateSchema: %v", err)
	}

	got, err := r.ReadN(10)
	if err != nil {
		t.Fatalf("ReadN: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ReadN: got %d rows, want 3", len(got))
	}
	if got[0].Value == nil || *got[0].Value != "28/02/1998" {
		t.Errorf("row 0 value: got %v", got[0].Value)
	}
	if got[1].Value != nil {
		t.Errorf("row 1 value: expected nil, got %q", *got[1].Value)
	}
	if got[2].RowID != nil {
		t.Errorf("row 2 row_id: expected nil, got %d", *got[2].RowID)
	}
}

func TestReadN_Limit(t *testing.T) {
	rows := make([]model.SourceRow, 600)
	for i := range rows {
		rows[i] = model.SourceRow{RowID: int64Ptr(int64(i)), Value: strPtr("2023-01-01")}
	}
	path := writeSource(t, rows)

	r, err := Open[model.SourceRow](path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	got, err := r.ReadN(300)
	if err != nil {
		t.Fatalf("ReadN: %v", err)
	}
	if len(got) != 300 {
		t.Errorf("ReadN(300): got %d rows", len(got))
	}
}

func TestValidateSchema(t *testing.T) {
	type noValue struct {
		RowID int64 `parquet:"row_id"`
	}
	type intValue struct {
		Value int64 `parquet:"value"`
	}

	tests := []struct {
		name    string
		schema  *parquet.Schema
		wantErr bool
	}{
		{"source row", parquet.SchemaOf(model.SourceRow{}), false},
		{"missing value", parquet.SchemaOf(noValue{}), true},
		{"non-string value", parquet.SchemaOf(intValue{}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSchema(tt.schema)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSchema error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
