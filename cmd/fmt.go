package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lausa/collective"
)

type fmtCmd struct {
	ledgerFile string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validate and rewrite the ledger file in canonical form"
}
func (*fmtCmd) Usage() string {
	return `lausa fmt [-l <group>]

  Replays and validates the whole ledger, then writes it back in a
  canonical JSONL form, one operation per line with a fixed field order.
  Replay fails on any unbalanced or malformed line, so the file is only
  rewritten when it is fully consistent.

`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "l", "", "Group to format. Defaults to the only group if one exists.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, filename, err := decodeLedger(c.ledgerFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := collective.SaveLedger(filename, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Formatted %s (%d operations)\n", filename, ledger.Len())
	return subcommands.ExitSuccess
}
