package export

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/gorewood/bookmarkgen/internal/tagindex"
)

// FormatIndexJSON encodes the exchange mapping.
// Map keys are sorted by encoding/json; HTML characters are left unescaped.
func FormatIndexJSON(idx *tagindex.Index) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(idx.Map()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteIndexJSON writes the exchange mapping to path, replacing any previous file.
func WriteIndexJSON(idx *tagindex.Index, path string) error {
	data, err := FormatIndexJSON(idx)
	if err != nil {
		return &WriteError{Op: "encode", Path: path, Err: err}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // read by the site generator
		return &WriteError{Op: "write", Path: path, Err: err}
	}
	return nil
}
