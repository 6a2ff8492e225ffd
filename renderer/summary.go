package renderer

import (
	"bytes"
	"fmt"

	"github.com/catervpillar/jbudget"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the balance of every account on the given day,
// with net worth totals per account type.
func SummaryMarkdown(accounts []*jbudget.Account, on jbudget.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Summary on %s", on))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Account", "Type", "Balance"},
	}
	var assets, liabilities jbudget.Money
	for _, a := range accounts {
		balance := a.BalanceAt(on)
		table.Rows = append(table.Rows, []string{
			a.Name(),
			a.Type().String(),
			balance.String(),
		})
		switch a.Type() {
		case jbudget.Asset:
			assets = assets.Add(balance)
		case jbudget.Liability:
			liabilities = liabilities.Add(balance)
		}
	}
	doc.Table(table)

	doc.H2("Net Worth")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Net Worth"), md.Bold(assets.Sub(liabilities).String())},
		Rows: [][]string{
			{"Assets", assets.String()},
			{"Liabilities", liabilities.String()},
		},
	})

	return doc.String()
}
