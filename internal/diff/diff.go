// Package diff renders line-oriented differences between two versions of a
// link database file, used to preview an insert before it is written.
package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines shown before/after changes.
// Longer unchanged runs are collapsed with "...".
const contextLines = 3

// Result holds diff output.
type Result struct {
	Old  string // old label
	New  string // new label
	Diff string // plain diff text
}

// Compute returns a line diff between old and new content.
func Compute(oldContent, newContent, oldLabel, newLabel string) Result {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldContent, newContent)
	d := dmp.DiffMain(a, b, false)
	d = dmp.DiffCharsToLines(d, lines)

	return Result{
		Old:  oldLabel,
		New:  newLabel,
		Diff: format(d),
	}
}

// Changed reports whether the two sides differ.
func (r Result) Changed() bool {
	for _, line := range strings.Split(r.Diff, "\n") {
		if strings.HasPrefix(line, "+ ") || strings.HasPrefix(line, "- ") {
			return true
		}
	}
	return false
}

// String returns the diff with a header naming both sides.
func (r Result) String() string {
	return "--- " + r.Old + "\n+++ " + r.New + "\n" + r.Diff
}

// format converts diffs to unified-style text.
func format(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for i, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" {
			continue
		}
		lines := strings.Split(text, "\n")
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, l := range lines {
				b.WriteString("- " + l + "\n")
			}
		case diffmatchpatch.DiffInsert:
			for _, l := range lines {
				b.WriteString("+ " + l + "\n")
			}
		case diffmatchpatch.DiffEqual:
			writeContext(&b, lines, i == 0, i == len(diffs)-1)
		}
	}
	return b.String()
}

// writeContext writes unchanged lines, keeping only contextLines next to a
// change. Leading and trailing runs keep only the side facing the change.
func writeContext(b *strings.Builder, lines []string, first, last bool) {
	head, tail := contextLines, contextLines
	if first {
		head = 0
	}
	if last {
		tail = 0
	}
	if len(lines) <= head+tail+1 {
		for _, l := range lines {
			b.WriteString("  " + l + "\n")
		}
		return
	}
	for _, l := range lines[:head] {
		b.WriteString("  " + l + "\n")
	}
	b.WriteString("  ...\n")
	for _, l := range lines[len(lines)-tail:] {
		b.WriteString("  " + l + "\n")
	}
}
