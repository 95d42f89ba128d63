package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lausa/collective/renderer"
)

type balanceCmd struct {
	ledgerFile string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show the current balance of every account" }
func (*balanceCmd) Usage() string {
	return `lausa balance [-l <group>]

  Shows the balance of every account in the group. A positive balance is
  owed to the account, a negative one is owed by it. Balances always sum
  to zero.

`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", "", "Group to report on. Defaults to the only group if one exists.")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, _, err := decodeLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.BalancesMarkdown(ledger))
	return subcommands.ExitSuccess
}
