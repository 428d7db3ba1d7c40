// Package linkdb maintains a flat, file-backed registry of named external
// links. The database is a JSON array of entries, each identified by both a
// unique URI and a unique short id, and carrying a description and optional
// keywords.
//
// Insert is the single mutating operation. It reads the database fresh from
// disk, rejects the entry if its uri or id is already taken, normalizes the
// description so it ends with terminal punctuation, appends the entry and
// writes the file back through a temporary file and rename. Any error before
// the write leaves the file exactly as it was found.
//
// # Errors
//
// Two channels are used and they are not interchangeable:
//
//   - Malformed calls (nil options, an options value that is not an object,
//     fields of the wrong type, an empty database path) panic with an
//     *InvalidArgumentError. They indicate a bug in the caller.
//   - Runtime data conditions are returned as errors wrapping ErrDatabaseRead,
//     ErrURIConflict, ErrIDConflict or ErrDatabaseWrite.
//
// # Concurrency
//
// There is no locking, in process or across processes. Two callers inserting
// into the same file at the same time can lose an update: both read the same
// prior state and the last writer wins. Callers that need multiple writers
// must serialize calls themselves.
package linkdb
