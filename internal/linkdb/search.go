package linkdb

import "strings"

// Search returns the entries matching query and keywords, in database order.
// The query is a case-insensitive substring match against uri, id and
// description. Keywords match if the entry carries any of them, ignoring
// case. Empty filters match everything.
func (db Database) Search(query string, keywords []string) Database {
	result := Database{}
	for _, e := range db {
		if matchesQuery(e, query) && matchesAnyKeyword(e.Keywords, keywords) {
			result = append(result, e)
		}
	}
	return result
}

// Lookup returns the entry with the given id.
func (db Database) Lookup(id string) (Entry, bool) {
	for _, e := range db {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

func matchesQuery(e Entry, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(e.URI), q) ||
		strings.Contains(strings.ToLower(e.ID), q) ||
		strings.Contains(strings.ToLower(e.Description), q)
}

// matchesAnyKeyword returns true if any of the entry's keywords match any of
// the filter keywords. Comparison is case-insensitive.
func matchesAnyKeyword(entryKeywords, filter []string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, f := range filter {
		for _, k := range entryKeywords {
			if strings.EqualFold(k, f) {
				return true
			}
		}
	}
	return false
}
