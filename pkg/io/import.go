package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/blockforge/blockforge/pkg/errors"
	"github.com/blockforge/blockforge/pkg/model"
)

// ReadJSON decodes a snapshot document from r into a fresh model.
//
// ReadJSON returns an error carrying the MALFORMED_SNAPSHOT code if:
//   - The JSON is malformed
//   - A block record is missing a required field (id, type, name, x, y)
//   - A block carries an unknown type
//   - A port is missing its id or carries an unknown side
//   - A connection is missing its id or an endpoint block
//   - Two blocks share an ID
//
// The returned model is independent of r and of any model the caller
// already holds: a failed read leaves existing state untouched.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*model.Model, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedSnapshot, err, "decode snapshot")
	}
	return ToModel(doc)
}

// ImportJSON reads a snapshot file at path and returns the decoded
// model. It opens the file, decodes it using [ReadJSON], and closes the
// file. The error wraps the underlying cause with the file path for
// context.
func ImportJSON(path string) (*model.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	m, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return m, nil
}
