package cli

import (
	"errors"
	"fmt"

	"github.com/linkdb-labs/linkdb/internal/linkdb"
	"github.com/linkdb-labs/linkdb/internal/log"
	"github.com/spf13/cobra"
)

// errInvalidDatabase is returned when validate finds issues.
var errInvalidDatabase = errors.New("database has issues")

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the database file",
	Long: `Check the database against the link schema, then check that every uri and
id is unique and every description ends with terminal punctuation.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) (err error) {
	path := databasePath()
	ev := log.Event("cli:validate", "validate").Database(path)
	defer func() { ev.Write(err) }()

	out := cmd.OutOrStdout()

	result, err := linkdb.ValidateSchemaFile(path)
	if err != nil {
		return err
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			where := issue.Path
			if where == "" {
				where = "/"
			}
			fmt.Fprintf(out, "  [schema] %s: %s\n", where, issue.Message)
		}
		ev.Detail("schema_issues", len(result.Issues))
		return fmt.Errorf("%w: %d schema issue(s) in %s", errInvalidDatabase, len(result.Issues), path)
	}

	db, err := linkdb.Read(path)
	if err != nil {
		return err
	}
	issues := db.Audit()
	for _, issue := range issues {
		fmt.Fprintf(out, "  [%s] entry %d: %s\n", issue.Kind, issue.Index, issue.Message)
	}
	ev.Detail("issues", len(issues))
	if len(issues) > 0 {
		return fmt.Errorf("%w: %d issue(s) in %s", errInvalidDatabase, len(issues), path)
	}

	fmt.Fprintf(out, "%s is valid (%d links).\n", path, len(db))
	return nil
}
