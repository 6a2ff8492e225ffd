package renderer

import (
	"bytes"
	"fmt"

	"github.com/catervpillar/jbudget"
	md "github.com/nao1215/markdown"
)

// LogMarkdown renders the given transactions, one section per
// transaction with a table of its movements.
func LogMarkdown(transactions []*jbudget.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transaction Log")
	if len(transactions) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	for _, t := range transactions {
		title := fmt.Sprintf("%s (#%d) %s", t.Date(), t.ID(), t.TotalAmount().SignedString())
		if tags := tagNames(t.Tags()); tags != "" {
			title += fmt.Sprintf(" [%s]", tags)
		}
		doc.H2(title)

		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignLeft,
			},
			Header: []string{"Account", "Amount", "Tags"},
		}
		for _, m := range t.Movements(nil) {
			table.Rows = append(table.Rows, []string{
				m.Account().Name(),
				m.Signed().SignedString(),
				tagNames(m.Tags()),
			})
		}
		doc.Table(table)
	}
	return doc.String()
}
