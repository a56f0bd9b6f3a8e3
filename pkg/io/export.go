package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/blockforge/blockforge/pkg/model"
)

// WriteJSON encodes the model as an indented snapshot document and
// writes it to w. The output can be re-imported with [ReadJSON] for
// round-trip processing.
func WriteJSON(m *model.Model, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromModel(m)); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// ExportJSON writes the model to a snapshot file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(m *model.Model, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(m, f)
}
