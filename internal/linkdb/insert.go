package linkdb

import "fmt"

// Insert adds the entry described by opts to the database at opts.Database.
//
// It returns nil on success. A missing or corrupt database, a taken uri or
// id, and a failed write are returned as errors and leave the file unchanged.
// A nil opts or an empty database path panics with *InvalidArgumentError.
func Insert(opts *Options) error {
	validateOptions(opts)
	return insert(opts)
}

// InsertValue decodes an untyped options value and inserts it. Anything that
// is not an object, or carries fields of the wrong type, panics with
// *InvalidArgumentError before any I/O happens.
func InsertValue(v any) error {
	return insert(DecodeOptions(v))
}

// InsertAsync validates opts in the calling goroutine, then performs the
// insert on a new goroutine and calls done exactly once with the result.
func InsertAsync(opts *Options, done func(error)) {
	validateOptions(opts)
	if done == nil {
		fault("", "callback must be a function", nil)
	}
	go func() {
		done(insert(opts))
	}()
}

// Change is the effect an insert has, or would have, on a database file.
type Change struct {
	Entry  Entry  // the entry as it is stored
	Before []byte // file contents before the insert
	After  []byte // file contents after the insert
}

// Plan runs the insert pipeline without writing and returns the resulting
// change. Errors and faults are the same as Insert's.
func Plan(opts *Options) (*Change, error) {
	validateOptions(opts)
	before, db, entry, err := prepare(opts)
	if err != nil {
		return nil, err
	}
	after, err := Marshal(db)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding %s: %w", ErrDatabaseWrite, opts.Database, err)
	}
	return &Change{Entry: entry, Before: before, After: after}, nil
}

func insert(opts *Options) error {
	_, db, _, err := prepare(opts)
	if err != nil {
		return err
	}
	if opts.DryRun {
		return nil
	}
	return Write(opts.Database, db)
}

// prepare reads the database, checks uniqueness and returns it with the new
// entry appended.
func prepare(opts *Options) ([]byte, Database, Entry, error) {
	raw, db, err := load(opts.Database)
	if err != nil {
		return nil, nil, Entry{}, err
	}

	if c := db.Conflict(opts.URI, opts.ID); c != ConflictNone {
		value := opts.URI
		if c == ConflictID {
			value = opts.ID
		}
		return nil, nil, Entry{}, &ConflictError{Kind: c, Value: value, Database: opts.Database}
	}

	entry := opts.entry()
	return raw, append(db, entry), entry, nil
}
