//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // LINKDB_HOME: config.yaml and log/
	ProjectDir string // directory holding the link database
}

// setupTestEnv creates isolated temp directories and sets environment variables
// so all linkdb operations are sandboxed. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
	}

	t.Setenv("LINKDB_HOME", env.HomeDir)
	t.Setenv("LINKDB_DATABASE", "")
	viper.Reset()
	t.Cleanup(viper.Reset)

	return env
}

// setupDatabase writes a link database with the given JSON content into the
// project directory and returns its path.
func setupDatabase(t *testing.T, env *testEnv, content string) string {
	t.Helper()
	path := filepath.Join(env.ProjectDir, "links.json")
	writeFile(t, path, content)
	return path
}

const seedDatabase = `[
  {
    "uri": "https://www.r-project.org/",
    "id": "r",
    "description": "A free software environment for statistical computing and graphics.",
    "keywords": [
      "r",
      "statistics"
    ]
  }
]
`

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readFile returns the contents of path, failing the test if it cannot be read.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
