package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lausa/collective/renderer"
)

type logCmd struct {
	ledgerFile string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list all operations recorded in the group ledger" }
func (*logCmd) Usage() string {
	return `lausa log [-l <group>]

  Lists every operation in the group ledger in application order.

`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", "", "Group to report on. Defaults to the only group if one exists.")
}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, _, err := decodeLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HistoryMarkdown(ledger))
	return subcommands.ExitSuccess
}
