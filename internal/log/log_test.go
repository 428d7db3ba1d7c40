package log

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempDB points the logger at a database inside a temp dir.
func useTempDB(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	orig := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	t.Cleanup(func() {
		Close()
		dbPathFunc = orig
	})
}

func query(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", DBPath())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenCreatesDatabase(t *testing.T) {
	useTempDB(t)

	require.NoError(t, Open())
	require.NoError(t, Open(), "Open must be idempotent")
	assert.FileExists(t, DBPath())
}

func TestEventSuccess(t *testing.T) {
	useTempDB(t)
	require.NoError(t, Open())

	Event("cli:insert", "insert").
		Database("links.json").
		Link("stdlib", "https://stdlib.io/").
		Detail("keywords", 3).
		Write(nil)

	var source, action, dbPath, id, uri, project, detail string
	var success int
	err := query(t).QueryRow(`SELECT source, action, db_path, link_id, link_uri, project, success, detail FROM log WHERE id = 1`).
		Scan(&source, &action, &dbPath, &id, &uri, &project, &success, &detail)
	require.NoError(t, err)

	assert.Equal(t, "cli:insert", source)
	assert.Equal(t, "insert", action)
	assert.Equal(t, "links.json", dbPath)
	assert.Equal(t, "stdlib", id)
	assert.Equal(t, "https://stdlib.io/", uri)
	assert.Len(t, project, 16)
	assert.Equal(t, 1, success)
	assert.JSONEq(t, `{"keywords":3}`, detail)
}

func TestEventFailure(t *testing.T) {
	useTempDB(t)
	require.NoError(t, Open())

	Event("cli:insert", "insert").Database("links.json").Write(errors.New("uri already exists"))

	var success int
	var msg string
	err := query(t).QueryRow(`SELECT success, error FROM log WHERE id = 1`).Scan(&success, &msg)
	require.NoError(t, err)
	assert.Equal(t, 0, success)
	assert.Equal(t, "uri already exists", msg)
}

func TestLogWithoutOpenIsNoop(t *testing.T) {
	useTempDB(t)

	Event("cli:list", "list").Write(nil)
	assert.NoFileExists(t, DBPath())
}

func TestProjectHash(t *testing.T) {
	assert.Equal(t, "", project(""))
	assert.Equal(t, project("links.json"), project("./links.json"))
	assert.NotEqual(t, project("a.json"), project("b.json"))
}
