package linkdb

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/linkdb-labs/linkdb/internal/platform"
)

// Write serializes db and replaces the file at path with it. The collection
// is written as-is; callers are responsible for its invariants. Failures wrap
// ErrDatabaseWrite and leave the previous file in place.
func Write(path string, db Database) error {
	data, err := Marshal(db)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %w", ErrDatabaseWrite, path, err)
	}
	if err := platform.ReplaceFile(path, data); err != nil {
		return fmt.Errorf("%w: %w", ErrDatabaseWrite, err)
	}
	return nil
}

// Marshal renders db in the on-disk format: an indented JSON array with
// fields in Entry order, no HTML escaping, and a trailing newline.
func Marshal(db Database) ([]byte, error) {
	if db == nil {
		db = Database{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(db); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
