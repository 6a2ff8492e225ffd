// Package renderer formats ledger data as markdown reports.
//
// Every renderer takes plain ledger entities and returns a markdown
// string. Callers decide whether to print it raw or through a terminal
// renderer.
package renderer

import (
	"strings"

	"github.com/catervpillar/jbudget"
)

// tagNames joins tag names with a comma for table cells.
func tagNames(tags []*jbudget.Tag) string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name()
	}
	return strings.Join(names, ", ")
}
