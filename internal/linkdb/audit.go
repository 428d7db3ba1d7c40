package linkdb

import "fmt"

// IssueKind classifies an invariant violation found by Audit.
type IssueKind string

const (
	IssueDuplicateURI IssueKind = "duplicate-uri"
	IssueDuplicateID  IssueKind = "duplicate-id"
	IssueUnpunctuated IssueKind = "unpunctuated-description"
	IssueMissingURI   IssueKind = "missing-uri"
	IssueMissingID    IssueKind = "missing-id"
)

// Issue is one invariant violation in a loaded database.
type Issue struct {
	Index   int // position of the offending entry
	Kind    IssueKind
	Message string
}

// Audit reports every entry that breaks a database invariant. Duplicates are
// reported on the later entry, pointing back at the first occurrence.
func (db Database) Audit() []Issue {
	var issues []Issue
	uris := make(map[string]int, len(db))
	ids := make(map[string]int, len(db))

	for i, e := range db {
		if e.URI == "" {
			issues = append(issues, Issue{Index: i, Kind: IssueMissingURI, Message: "entry has an empty uri"})
		} else if first, ok := uris[e.URI]; ok {
			issues = append(issues, Issue{
				Index:   i,
				Kind:    IssueDuplicateURI,
				Message: fmt.Sprintf("uri %q already used by entry %d", e.URI, first),
			})
		} else {
			uris[e.URI] = i
		}

		if e.ID == "" {
			issues = append(issues, Issue{Index: i, Kind: IssueMissingID, Message: "entry has an empty id"})
		} else if first, ok := ids[e.ID]; ok {
			issues = append(issues, Issue{
				Index:   i,
				Kind:    IssueDuplicateID,
				Message: fmt.Sprintf("id %q already used by entry %d", e.ID, first),
			})
		} else {
			ids[e.ID] = i
		}

		if NormalizeDescription(e.Description) != e.Description {
			issues = append(issues, Issue{
				Index:   i,
				Kind:    IssueUnpunctuated,
				Message: fmt.Sprintf("description of %q does not end with terminal punctuation", e.ID),
			})
		}
	}
	return issues
}
