package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/linkdb-labs/linkdb/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyDatabase = "database" // default link database path
	KeyAudit    = "audit"    // record operations in the audit log
)

var (
	// ErrUnknownKey is returned when setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Keys lists the keys accepted by Set.
var Keys = []string{KeyDatabase, KeyAudit}

// Dir returns the path to the config directory. LINKDB_HOME overrides the
// default of ~/.linkdb/.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.linkdb/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := checkValue(key, value); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func checkValue(key, value string) error {
	switch key {
	case KeyDatabase:
		if value == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidValue, key)
		}
	case KeyAudit:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("%w: %s must be true or false, got %q", ErrInvalidValue, key, value)
		}
	default:
		return fmt.Errorf("%w: %q (valid: %v)", ErrUnknownKey, key, Keys)
	}
	return nil
}

// Database resolves the link database path.
// Priority: flag > LINKDB_DATABASE env > config file > links.json in the
// working directory.
func Database(flag string) string {
	if flag != "" {
		return flag
	}
	if db := viper.GetString(KeyDatabase); db != "" {
		return db
	}
	return branding.DefaultDatabase()
}

// AuditEnabled reports whether operations are recorded in the audit log.
// Defaults to true.
func AuditEnabled() bool {
	if !viper.IsSet(KeyAudit) {
		return true
	}
	return viper.GetBool(KeyAudit)
}
