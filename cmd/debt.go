package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type debtCmd struct {
	creditor   string
	debitor    string
	amount     string
	date       string
	subject    string
	ledgerFile string
}

func (*debtCmd) Name() string     { return "debt" }
func (*debtCmd) Synopsis() string { return "record a debt acknowledged between two accounts" }
func (*debtCmd) Usage() string {
	return `lausa debt -creditor <account> -debitor <account> -amount <amount> [-d <date>] [-m <subject>] [-l <group>]

  Records a debt without any money changing hands yet, e.g. a private
  arrangement the group wants tracked. The creditor is credited, the
  debitor is debited.

Usage Examples:
# Bob owes Alice 20.00 for concert tickets.
$ lausa debt -creditor alice -debitor bob -amount 20 -m "tickets"

`
}

func (c *debtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.creditor, "creditor", "", "Account the debt is owed to.")
	f.StringVar(&c.debitor, "debitor", "", "Account that owes the debt.")
	f.StringVar(&c.amount, "amount", "", "Amount owed, e.g. 20.00.")
	f.StringVar(&c.date, "d", "", "Date of the debt. Defaults to today.")
	f.StringVar(&c.subject, "m", "", "Subject of the debt.")
	f.StringVar(&c.ledgerFile, "l", "", "Group to update. Defaults to the only group if one exists.")
}

func (c *debtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.creditor == "" || c.debitor == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -creditor, -debitor and -amount are required.")
		return subcommands.ExitUsageError
	}
	on, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitFailure
	}
	amount, err := parseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger, filename, err := decodeLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	op, err := ledger.RecordDebt(on, c.creditor, c.debitor, amount, c.subject)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording debt: %v\n", err)
		return subcommands.ExitFailure
	}
	return appendOperation(filename, op)
}
