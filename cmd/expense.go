package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type expenseCmd struct {
	payer        string
	amount       string
	participants string
	date         string
	description  string
	ledgerFile   string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record a shared expense" }
func (*expenseCmd) Usage() string {
	return `lausa expense -by <payer> -amount <amount> -for <a,b,c> [-d <date>] [-m <description>] [-l <group>]

  Records an expense advanced by one account and shared equally among the
  participants. The payer is credited the full amount, every participant is
  debited an equal share. When the amount does not divide evenly, the extra
  cents go to the first participants in account order.

Usage Examples:
# Alice paid 100.00 for a dinner shared by alice, bob and carol.
$ lausa expense -by alice -amount 100 -for alice,bob,carol -m "dinner"

`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.payer, "by", "", "Account that advanced the money.")
	f.StringVar(&c.amount, "amount", "", "Total amount of the expense, e.g. 33.33.")
	f.StringVar(&c.participants, "for", "", "Comma-separated accounts sharing the expense. Defaults to all accounts.")
	f.StringVar(&c.date, "d", "", "Date of the expense. Defaults to today.")
	f.StringVar(&c.description, "m", "", "Free-form description of the expense.")
	f.StringVar(&c.ledgerFile, "l", "", "Group to update. Defaults to the only group if one exists.")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.payer == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -by and -amount are required.")
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

	participants := ledger.Accounts()
	if c.participants != "" {
		participants = strings.Split(c.participants, ",")
	}

	op, err := ledger.RecordExpense(on, c.payer, amount, participants, c.description)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording expense: %v\n", err)
		return subcommands.ExitFailure
	}
	return appendOperation(filename, op)
}
