package cli

import (
	"fmt"
	"strings"

	"github.com/linkdb-labs/linkdb/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write linkdb configuration stored at ~/.linkdb/config.yaml.

Keys:
  database   default link database path
  audit      record operations in the audit log (true or false)`,
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Set a configuration value",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:       "get <key>",
	Short:     "Get a configuration value",
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if !isConfigKey(key) {
			return fmt.Errorf("%w: %q (valid: %s)", config.ErrUnknownKey, key, strings.Join(config.Keys, ", "))
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(key))
		return nil
	},
}

func isConfigKey(key string) bool {
	for _, k := range config.Keys {
		if k == key {
			return true
		}
	}
	return false
}
