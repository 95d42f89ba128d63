package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lausa/collective"
	"github.com/lausa/collective/renderer"
)

type settleCmd struct {
	apply      bool
	date       string
	ledgerFile string
}

func (*settleCmd) Name() string     { return "settle" }
func (*settleCmd) Synopsis() string { return "plan the transfers that bring every balance to zero" }
func (*settleCmd) Usage() string {
	return `lausa settle [-apply] [-d <date>] [-l <group>]

  Computes a minimal list of transfers that settles the group: after all of
  them are executed every balance is zero. By default the plan is only
  printed. With -apply the transfers are recorded in the ledger, to be used
  once the money actually changed hands.

Usage Examples:
# See who should pay whom.
$ lausa settle
# The group settled up in cash, record it.
$ lausa settle -apply

`
}

func (c *settleCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.apply, "apply", false, "Record the planned transfers in the ledger.")
	f.StringVar(&c.date, "d", "", "Date of the settlement. Defaults to today.")
	f.StringVar(&c.ledgerFile, "l", "", "Group to settle. Defaults to the only group if one exists.")
}

func (c *settleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	plan, err := collective.PlanSettlement(on, ledger.CurrentState())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error planning settlement: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.apply {
		printMarkdown(renderer.PlanMarkdown(plan))
		return subcommands.ExitSuccess
	}

	for _, op := range plan {
		if _, err := ledger.Apply(op); err != nil {
			fmt.Fprintf(os.Stderr, "Error applying settlement: %v\n", err)
			return subcommands.ExitFailure
		}
		if status := appendOperation(filename, op); status != subcommands.ExitSuccess {
			return status
		}
	}
	fmt.Printf("Recorded %d settlement operations, all balances are zero.\n", len(plan))
	return subcommands.ExitSuccess
}
