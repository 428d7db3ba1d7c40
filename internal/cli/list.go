package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/linkdb-labs/linkdb/internal/linkdb"
	"github.com/linkdb-labs/linkdb/internal/log"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	listJSON bool
	listYAML bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List links in the database",
	Long:  `List every link in the database, in file order.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "Output in YAML format")
	listCmd.MarkFlagsMutuallyExclusive("json", "yaml")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) (err error) {
	path := databasePath()
	ev := log.Event("cli:list", "list").Database(path)
	defer func() { ev.Write(err) }()

	db, err := linkdb.Read(path)
	if err != nil {
		return err
	}
	ev.Detail("count", len(db))

	if len(db) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No links in %s.\n", path)
		return nil
	}

	switch {
	case listJSON:
		return printEntriesJSON(cmd, db)
	case listYAML:
		return printEntriesYAML(cmd, db)
	}
	return printEntriesTable(cmd, db)
}

func printEntriesTable(cmd *cobra.Command, db linkdb.Database) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tURI\tKEYWORDS\tDESCRIPTION")
	for _, e := range db {
		keywords := strings.Join(e.Keywords, ",")
		if keywords == "" {
			keywords = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.URI, keywords, truncate(e.Description, 60))
	}
	return w.Flush()
}

func printEntriesJSON(cmd *cobra.Command, db linkdb.Database) error {
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

func printEntriesYAML(cmd *cobra.Command, db linkdb.Database) error {
	data, err := yaml.Marshal(db)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
