package cli

import (
	"fmt"
	"strings"

	"github.com/linkdb-labs/linkdb/internal/linkdb"
	"github.com/linkdb-labs/linkdb/internal/log"
	"github.com/spf13/cobra"
)

var (
	searchKeywordFilter string
	searchJSON          bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search links in the database",
	Long: `Search links by uri, id and description (case-insensitive substring).
Use --keyword to keep only links carrying any of the given keywords.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchKeywordFilter, "keyword", "", "Filter by keywords (comma-separated, matches any)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) (err error) {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}
	keywords := splitKeywords(searchKeywordFilter)

	path := databasePath()
	ev := log.Event("cli:search", "search").Database(path).Detail("query", query)
	defer func() { ev.Write(err) }()

	db, err := linkdb.Read(path)
	if err != nil {
		return err
	}

	found := db.Search(query, keywords)
	ev.Detail("count", len(found))

	if len(found) == 0 {
		msg := "No links found"
		if query != "" {
			msg += fmt.Sprintf(" matching %q", query)
		}
		if searchKeywordFilter != "" {
			msg += fmt.Sprintf(" with --keyword=%s", searchKeywordFilter)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	}

	if searchJSON {
		return printEntriesJSON(cmd, found)
	}
	return printEntriesTable(cmd, found)
}

// splitKeywords parses a comma-separated keyword filter, dropping blanks.
func splitKeywords(s string) []string {
	var out []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
