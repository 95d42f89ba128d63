package renderer

import (
	"strings"
	"testing"

	"github.com/lausa/collective"
	"github.com/lausa/collective/date"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// parseMarkdown parses a report and returns its AST, failing the test on
// anything goldmark cannot read as a GFM document.
func parseMarkdown(t *testing.T, source string) ast.Node {
	t.Helper()
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	return md.Parser().Parse(text.NewReader([]byte(source)))
}

// countKinds walks the AST and counts headings and tables.
func countKinds(t *testing.T, source string) (headings, tables int) {
	t.Helper()
	root := parseMarkdown(t, source)
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.Heading:
			headings++
		case *extast.Table:
			tables++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking markdown: %v", err)
	}
	return headings, tables
}

func testLedger(t *testing.T) *collective.Ledger {
	t.Helper()
	on := date.MustParse("2025-06-01")
	l := collective.NewLedger()
	if _, err := l.RecordExpense(on, "alice", collective.Cents(10000), []string{"alice", "bob", "carol"}, "dinner"); err != nil {
		t.Fatalf("RecordExpense: %v", err)
	}
	if _, err := l.RecordTransfer(on.Add(1), "bob", "alice", collective.Cents(3333), ""); err != nil {
		t.Fatalf("RecordTransfer: %v", err)
	}
	return l
}

func TestBalancesMarkdown(t *testing.T) {
	out := BalancesMarkdown(testLedger(t))

	headings, tables := countKinds(t, out)
	if headings != 1 || tables != 1 {
		t.Errorf("report has %d headings and %d tables, want 1 and 1", headings, tables)
	}
	for _, account := range []string{"alice", "bob", "carol"} {
		if !strings.Contains(out, account) {
			t.Errorf("report misses account %q:\n%s", account, out)
		}
	}
	if !strings.Contains(out, "creditor") || !strings.Contains(out, "debitor") {
		t.Errorf("report misses creditor/debitor tags:\n%s", out)
	}
}

func TestHistoryMarkdown(t *testing.T) {
	out := HistoryMarkdown(testLedger(t))

	headings, tables := countKinds(t, out)
	if headings != 1 || tables != 1 {
		t.Errorf("report has %d headings and %d tables, want 1 and 1", headings, tables)
	}
	if !strings.Contains(out, "expense") || !strings.Contains(out, "transfer") {
		t.Errorf("report misses operation kinds:\n%s", out)
	}
	if !strings.Contains(out, "dinner") {
		t.Errorf("report misses the expense description:\n%s", out)
	}
}

func TestPlanMarkdown(t *testing.T) {
	l := testLedger(t)
	plan, err := collective.PlanSettlement(date.MustParse("2025-06-02"), l.CurrentState())
	if err != nil {
		t.Fatalf("PlanSettlement: %v", err)
	}

	out := PlanMarkdown(plan)
	headings, tables := countKinds(t, out)
	if headings != 1 || tables != 1 {
		t.Errorf("report has %d headings and %d tables, want 1 and 1", headings, tables)
	}

	empty := PlanMarkdown(nil)
	if !strings.Contains(empty, "nothing to do") {
		t.Errorf("empty plan report = %q", empty)
	}
}

func TestOperation(t *testing.T) {
	on := date.MustParse("2025-06-01")

	expense, err := collective.SplitExpense(on, "alice", collective.Cents(9000), []string{"alice", "bob", "carol"}, "groceries")
	if err != nil {
		t.Fatalf("SplitExpense: %v", err)
	}
	if got := Operation(expense); !strings.Contains(got, "alice") || !strings.Contains(got, "groceries") {
		t.Errorf("expense line = %q", got)
	}

	transfer, err := collective.NewTransfer(on, "bob", "alice", collective.Cents(100), "")
	if err != nil {
		t.Fatalf("NewTransfer: %v", err)
	}
	if got := Operation(transfer); !strings.Contains(got, "bob") || !strings.Contains(got, "alice") {
		t.Errorf("transfer line = %q", got)
	}

	debt, err := collective.NewDebt(on, "alice", "bob", collective.Cents(100), "tickets")
	if err != nil {
		t.Fatalf("NewDebt: %v", err)
	}
	if got := Operation(debt); !strings.Contains(got, "owes") {
		t.Errorf("debt line = %q", got)
	}
}
