package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addAccountCmd struct {
	id         string
	date       string
	ledgerFile string
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "add a participant account to the group" }
func (*addAccountCmd) Usage() string {
	return `lausa add-account -a <account> [-d <date>] [-l <group>]

  Adds an account to the group. The account starts with a zero balance and
  can then take part in expenses, transfers and debts.

Usage Examples:
$ lausa add-account -a alice

`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "a", "", "Account id to add.")
	f.StringVar(&c.date, "d", "", "Date of the operation. Defaults to today.")
	f.StringVar(&c.ledgerFile, "l", "", "Group to update. Defaults to the only group if one exists.")
}

func (c *addAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -a <account> is required.")
		return subcommands.ExitUsageError
	}
	on, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger, filename, err := decodeLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if ledger.Has(c.id) {
		fmt.Fprintf(os.Stderr, "Error: account %q already exists.\n", c.id)
		return subcommands.ExitFailure
	}

	op, err := ledger.AddAccount(on, c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding account: %v\n", err)
		return subcommands.ExitFailure
	}
	return appendOperation(filename, op)
}

type removeAccountCmd struct {
	id         string
	date       string
	ledgerFile string
}

func (*removeAccountCmd) Name() string     { return "remove-account" }
func (*removeAccountCmd) Synopsis() string { return "remove a settled account from the group" }
func (*removeAccountCmd) Usage() string {
	return `lausa remove-account -a <account> [-d <date>] [-l <group>]

  Removes an account from the group. Only accounts with a zero balance can
  be removed; settle the group first if needed.

`
}

func (c *removeAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "a", "", "Account id to remove.")
	f.StringVar(&c.date, "d", "", "Date of the operation. Defaults to today.")
	f.StringVar(&c.ledgerFile, "l", "", "Group to update. Defaults to the only group if one exists.")
}

func (c *removeAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -a <account> is required.")
		return subcommands.ExitUsageError
	}
	on, err := parseDay(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitFailure
	}

	ledger, filename, err := decodeLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	op, err := ledger.RemoveAccount(on, c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error removing account: %v\n", err)
		return subcommands.ExitFailure
	}
	return appendOperation(filename, op)
}
