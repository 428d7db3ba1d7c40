package linkdb

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// entryFields are the only keys an entry object may carry, compared exactly.
var entryFields = map[string]bool{"uri": true, "id": true, "description": true, "keywords": true}

// Read loads and parses the link database at path. A missing file, an
// unreadable file and a document that is not a JSON array of entries are all
// returned as errors wrapping ErrDatabaseRead.
func Read(path string) (Database, error) {
	_, db, err := load(path)
	return db, err
}

// load returns the raw file bytes along with the parsed database.
func load(path string) ([]byte, Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading %s: %w", ErrDatabaseRead, path, err)
	}
	db, err := Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: parsing %s: %w", ErrDatabaseRead, path, err)
	}
	return data, db, nil
}

// Parse decodes a link database document. Unknown, case-variant and
// repeated entry fields are rejected, as is invalid UTF-8, so a rewrite can
// never silently drop or alter data. Entries without keywords get an empty
// list.
func Parse(data []byte) (Database, error) {
	if !utf8.Valid(data) {
		return nil, errors.New("document is not valid UTF-8")
	}
	if err := checkEntryKeys(data); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var db Database
	if err := dec.Decode(&db); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after top-level array")
	}

	if db == nil {
		db = Database{}
	}
	for i := range db {
		if db[i].Keywords == nil {
			db[i].Keywords = []string{}
		}
	}
	return db, nil
}

// checkEntryKeys walks the entry objects of a top-level array and rejects
// keys encoding/json would fold or overwrite: case variants of a field name
// and a field given twice. Shape errors are left to the decoder.
func checkEntryKeys(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('[') {
		return nil
	}

	for i := 0; dec.More(); i++ {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if tok != json.Delim('{') {
			return nil
		}

		seen := make(map[string]bool, len(entryFields))
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return err
			}
			key, _ := tok.(string)
			if !entryFields[key] {
				return fmt.Errorf("entry %d: unknown field %q", i, key)
			}
			if seen[key] {
				return fmt.Errorf("entry %d: duplicate field %q", i, key)
			}
			seen[key] = true

			var value json.RawMessage
			if err := dec.Decode(&value); err != nil {
				return err
			}
		}
		if _, err := dec.Token(); err != nil {
			return err
		}
	}
	return nil
}
