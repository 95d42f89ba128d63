// Package renderer turns ledger state into markdown reports for the CLI.
// It only reads the public interface of the collective package.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/lausa/collective"
	md "github.com/nao1215/markdown"
)

// BalancesMarkdown renders the current balances as a markdown table, one row
// per account in id order. Positive balances are owed to the account,
// negative balances are owed by it.
func BalancesMarkdown(l *collective.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Balances")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Account", "Balance", ""},
		Rows:   [][]string{},
	}
	for id, balance := range l.Balances() {
		var role string
		switch {
		case balance.IsPositive():
			role = "creditor"
		case balance.IsNegative():
			role = "debitor"
		case balance.IsZero():
			role = "settled"
		}
		table.Rows = append(table.Rows, []string{id, balance.SignedString(), role})
	}
	doc.Table(table)

	return doc.String()
}

// HistoryMarkdown renders the operation log as a numbered markdown table in
// application order.
func HistoryMarkdown(l *collective.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Operations")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"#", "Date", "Kind", "Operation"},
		Rows:   [][]string{},
	}
	i := 0
	for op := range l.History() {
		i++
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", i),
			op.When().String(),
			string(op.What()),
			Operation(op),
		})
	}
	doc.Table(table)

	return doc.String()
}

// PlanMarkdown renders a settlement plan as a markdown table of who pays
// whom. The plan is advisory until each operation is applied.
func PlanMarkdown(plan []collective.Operation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Settlement plan")
	if len(plan) == 0 {
		doc.PlainText("All accounts are settled, nothing to do.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"From", "To", "Amount"},
		Rows:   [][]string{},
	}
	for _, op := range plan {
		from, to, amount := endpoints(op)
		table.Rows = append(table.Rows, []string{from, to, amount.String()})
	}
	doc.Table(table)

	return doc.String()
}
