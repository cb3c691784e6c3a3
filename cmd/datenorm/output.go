package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func checkOutput(format string) error {
	switch format {
	case "", "text", "json":
		return nil
	}
	return fmt.Errorf("--output must be text or json, got %q", format)
}
