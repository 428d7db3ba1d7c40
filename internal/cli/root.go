package cli

import (
	"fmt"
	"os"

	"github.com/linkdb-labs/linkdb/internal/branding"
	"github.com/linkdb-labs/linkdb/internal/config"
	"github.com/linkdb-labs/linkdb/internal/linkdb"
	"github.com/linkdb-labs/linkdb/internal/log"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// databaseFlag holds the persistent --database flag.
var databaseFlag string

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` maintains a JSON file of links, each with a unique uri, a unique
short id, a description and optional keywords.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		// Commands that do not touch a database skip the audit log.
		name := cmd.Name()
		if name == "version" || name == "config" || name == "get" || name == "set" || !config.AuditEnabled() {
			return
		}
		if err := log.Open(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: audit log unavailable: %v\n", err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseFlag, "database", "",
		"Path of the link database (default: $LINKDB_DATABASE, config key 'database', or "+branding.DefaultDatabase()+")")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	defer log.Close()

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// databasePath resolves the database the current command operates on.
func databasePath() string {
	return config.Database(databaseFlag)
}

// recoverFault turns an *InvalidArgumentError panic into a returned error.
// Other panics propagate.
func recoverFault(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if fault, ok := r.(*linkdb.InvalidArgumentError); ok {
		*err = fault
		return
	}
	panic(r)
}
