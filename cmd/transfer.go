package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type transferCmd struct {
	from        string
	to          string
	amount      string
	date        string
	description string
	ledgerFile  string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "record a direct payment between two accounts" }
func (*transferCmd) Usage() string {
	return `lausa transfer -from <account> -to <account> -amount <amount> [-d <date>] [-m <description>] [-l <group>]

  Records money handed from one account to another, typically a
  reimbursement. The sender is credited, the receiver is debited.

Usage Examples:
# Bob hands 33.33 back to Alice.
$ lausa transfer -from bob -to alice -amount 33.33

`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Account that hands the money over.")
	f.StringVar(&c.to, "to", "", "Account that receives the money.")
	f.StringVar(&c.amount, "amount", "", "Amount transferred, e.g. 33.33.")
	f.StringVar(&c.date, "d", "", "Date of the transfer. Defaults to today.")
	f.StringVar(&c.description, "m", "", "Free-form description of the transfer.")
	f.StringVar(&c.ledgerFile, "l", "", "Group to update. Defaults to the only group if one exists.")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.to == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -from, -to and -amount are required.")
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

	op, err := ledger.RecordTransfer(on, c.from, c.to, amount, c.description)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording transfer: %v\n", err)
		return subcommands.ExitFailure
	}
	return appendOperation(filename, op)
}
