package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
)

type initCmd struct {
	name string
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a new empty group ledger" }
func (*initCmd) Usage() string {
	return `lausa init -l <group>

  Creates an empty ledger file for a new group in the ledger directory.
  The group name becomes the file name, e.g. "trip" creates trip.jsonl.

Usage Examples:
$ lausa init -l trip

`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "l", "", "Name of the group to create.")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -l <group> is required.")
		return subcommands.ExitUsageError
	}

	filename := filepath.Join(ledgerDirPath(), c.name+".jsonl")
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			fmt.Fprintf(os.Stderr, "Error: ledger %q already exists.\n", filename)
		} else {
			fmt.Fprintf(os.Stderr, "Error creating ledger %q: %v\n", filename, err)
		}
		return subcommands.ExitFailure
	}
	file.Close()

	fmt.Printf("Created empty ledger %s\n", filename)
	return subcommands.ExitSuccess
}
