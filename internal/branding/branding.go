// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Anyone repackaging the tool edits that file only.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName         string `yaml:"cli_name"`
	DisplayName     string `yaml:"display_name"`
	Description     string `yaml:"description"`
	HomeDir         string `yaml:"home_dir"`
	EnvPrefix       string `yaml:"env_prefix"`
	GoModule        string `yaml:"go_module"`
	DefaultDatabase string `yaml:"default_database"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is empty.
		defaults = brand{
			CLIName:         "linkdb",
			DisplayName:     "LinkDB",
			Description:     "Registry of named external links backed by a JSON file",
			HomeDir:         ".linkdb",
			EnvPrefix:       "LINKDB",
			GoModule:        "github.com/linkdb-labs/linkdb",
			DefaultDatabase: "links.json",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "linkdb").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "LinkDB").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".linkdb").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "LINKDB").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// DefaultDatabase returns the database file name used when nothing else is
// configured.
func DefaultDatabase() string { load(); return defaults.DefaultDatabase }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("home") → "LINKDB_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
