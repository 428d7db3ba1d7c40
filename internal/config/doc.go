// Package config manages user-level settings stored at ~/.linkdb/config.yaml.
// It loads the file and LINKDB_* environment overrides through Viper and
// resolves which link database file commands operate on.
package config
