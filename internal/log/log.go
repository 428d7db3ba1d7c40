// Package log records an audit trail of linkdb operations. Entries are
// stored in ~/.linkdb/log/linkdb-log.db and cover every command that reads
// or modifies a link database.
//
// Build entries with the fluent API and finish them with Write:
//
//	log.Event("cli:insert", "insert").
//		Database(path).
//		Link(opts.ID, opts.URI).
//		Write(err)
//
// Logging is best-effort. A missing or broken log never fails the operation
// being logged.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source   string // e.g., "cli:insert", "cli:validate"
	Action   string // verb: insert, list, search, validate
	Database string // path of the link database, as given
	ID       string // link id, for operations on one entry
	URI      string // link uri, for operations on one entry

	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool
	Error   string
	Detail  map[string]any
}

// Builder constructs a log entry using a fluent API.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Database sets the link database the operation targets.
func (b *Builder) Database(path string) *Builder {
	b.entry.Database = path
	return b
}

// Link sets the id and uri of the entry the operation targets.
func (b *Builder) Link(id, uri string) *Builder {
	b.entry.ID = id
	b.entry.URI = uri
	return b
}

// Detail adds a key-value pair to the entry's detail map.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write records the entry, deriving success or failure from err.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// Log writes an entry. A no-op when the logger is not open.
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
