package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/linkdb-labs/linkdb/internal/diff"
	"github.com/linkdb-labs/linkdb/internal/linkdb"
	"github.com/linkdb-labs/linkdb/internal/log"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	insertURI         string
	insertID          string
	insertDescription string
	insertKeywords    []string
	insertFrom        string
	insertDryRun      bool
)

var insertCmd = &cobra.Command{
	Use:   "insert",
	Short: "Add a link to the database",
	Long: `Add a link to the database. The uri and id must not already be in use.
A description without terminal punctuation gets a trailing period.

Example:
  linkdb insert --uri https://stdlib.io/ --id stdlib \
    --description "A standard library for JavaScript and Node.js." \
    -k standard -k library
  linkdb insert --from link.yaml
  linkdb insert --uri https://jsdoc.app/ --id jsdoc --description "JSDoc" --dry-run`,
	Args: cobra.NoArgs,
	RunE: runInsert,
}

func init() {
	insertCmd.Flags().StringVar(&insertURI, "uri", "", "Link address (must be unique)")
	insertCmd.Flags().StringVar(&insertID, "id", "", "Short name (must be unique)")
	insertCmd.Flags().StringVar(&insertDescription, "description", "", "Human-readable description")
	insertCmd.Flags().StringArrayVarP(&insertKeywords, "keyword", "k", nil, "Keyword (repeatable)")
	insertCmd.Flags().StringVar(&insertFrom, "from", "", "Read the link from a JSON or YAML file ('-' for stdin)")
	insertCmd.Flags().BoolVar(&insertDryRun, "dry-run", false, "Show the change without writing it")
	insertCmd.MarkFlagsMutuallyExclusive("from", "uri")
	insertCmd.MarkFlagsMutuallyExclusive("from", "id")
	insertCmd.MarkFlagsMutuallyExclusive("from", "description")
	rootCmd.AddCommand(insertCmd)
}

func runInsert(cmd *cobra.Command, args []string) (err error) {
	defer recoverFault(&err)

	var opts *linkdb.Options
	if insertFrom != "" {
		opts, err = optionsFromFile(cmd, insertFrom)
		if err != nil {
			return err
		}
	} else {
		if err := requireFlags(cmd, "uri", "id", "description"); err != nil {
			return err
		}
		opts = &linkdb.Options{
			URI:         insertURI,
			ID:          insertID,
			Description: insertDescription,
			Keywords:    insertKeywords,
			Database:    databasePath(),
		}
	}

	ev := log.Event("cli:insert", "insert").Database(opts.Database).Link(opts.ID, opts.URI)
	if insertDryRun {
		ev.Detail("dry_run", true)
	}
	err = applyInsert(cmd, opts)
	ev.Write(err)
	return err
}

func applyInsert(cmd *cobra.Command, opts *linkdb.Options) (err error) {
	defer recoverFault(&err)

	if insertDryRun {
		return planInsert(cmd, opts)
	}
	if err := linkdb.Insert(opts); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Inserted %s (%s) into %s\n", opts.ID, opts.URI, opts.Database)
	return nil
}

func planInsert(cmd *cobra.Command, opts *linkdb.Options) error {
	change, err := linkdb.Plan(opts)
	if err != nil {
		return err
	}
	r := diff.Compute(string(change.Before), string(change.After), "a/"+opts.Database, "b/"+opts.Database)
	fmt.Fprint(cmd.OutOrStdout(), r.String())
	fmt.Fprintf(cmd.OutOrStdout(), "Dry run: %s not written.\n", opts.Database)
	return nil
}

// optionsFromFile decodes a link document. The document's fields go through
// the same checks as any untyped options value. An explicit --database flag
// replaces the document's database field; a missing one is filled in from
// the environment, config or default.
func optionsFromFile(cmd *cobra.Command, path string) (*linkdb.Options, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	// YAML is a superset of JSON, so one decoder handles both.
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if m, ok := doc.(map[string]any); ok {
		if _, set := m["database"]; !set || cmd.Flags().Changed("database") {
			m["database"] = databasePath()
		}
	}
	return linkdb.DecodeOptions(doc), nil
}

// requireFlags reports the first named flag that was not given.
func requireFlags(cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		if !cmd.Flags().Changed(name) {
			return fmt.Errorf("required flag \"%s\" not set (or use --from)", name)
		}
	}
	return nil
}
