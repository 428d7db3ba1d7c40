package log

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/linkdb-labs/linkdb/internal/branding"
	"github.com/linkdb-labs/linkdb/internal/config"
	"golang.org/x/crypto/blake2b"
)

// Logger writes audit log entries to a SQLite database.
type Logger struct {
	db *sql.DB
}

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	_, err := l.db.Exec(`
		INSERT INTO log (start, end, project, source, action, db_path, link_id,
		                 link_uri, success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, project(e.Database), e.Source, e.Action,
		nilIfEmpty(e.Database), nilIfEmpty(e.ID), nilIfEmpty(e.URI),
		success, nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s: audit log write failed: %v\n", branding.CLIName(), err)
	}
}

// dbPathFunc returns the log database path. Tests override it.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	return filepath.Join(config.Dir(), "log", branding.CLIName()+"-log.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the log database.
func DBPath() string {
	return dbPath()
}

// project identifies a link database by a hash of its absolute path, so
// entries can be grouped per database without storing directory names.
func project(database string) string {
	if database == "" {
		return ""
	}
	if abs, err := filepath.Abs(database); err == nil {
		database = abs
	}
	return hash(database)
}

func hash(s string) string {
	h, err := blake2b.New(8, nil) // 64-bit = 16 hex chars
	if err != nil {
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the log table if it doesn't exist.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS log (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			start    INTEGER NOT NULL,
			end      INTEGER NOT NULL,
			project  TEXT NOT NULL,
			source   TEXT NOT NULL,
			action   TEXT NOT NULL,
			db_path  TEXT,
			link_id  TEXT,
			link_uri TEXT,
			success  INTEGER NOT NULL,
			error    TEXT,
			detail   TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_log_start ON log(start);
		CREATE INDEX IF NOT EXISTS idx_log_project ON log(project);
	`)
	return err
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
