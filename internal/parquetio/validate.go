package parquetio

import (
	"fmt"
	"os"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// ValueColumn holds the date strings to normalize.
const ValueColumn = "value"

// ValidateSchema checks that the Parquet schema contains the value column
// and that it is a string column.
func ValidateSchema(schema *parquet.Schema) error {
	for _, field := range schema.Fields() {
		if strings.ToLower(field.Name()) != ValueColumn {
			continue
		}
		if !field.Leaf() {
			return fmt.Errorf("column %s must be a primitive column", ValueColumn)
		}
		if field.Type().Kind() != parquet.ByteArray {
			return fmt.Errorf("column %s must be a string column, got %s", ValueColumn, field.Type())
		}
		return nil
	}
	return fmt.Errorf("missing required column: %s", ValueColumn)
}

// ReadSchema returns the schema stored in the file at path without building
// a typed reader, so a file can be checked before it is decoded as T.
func ReadSchema(path string) (*parquet.Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}
	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}
	return pf.Schema(), nil
}
