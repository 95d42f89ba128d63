// Package cmd implements the CLI application to manage a group ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lausa/collective"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "ledger")
	c.Register(&addAccountCmd{}, "ledger")
	c.Register(&removeAccountCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&expenseCmd{}, "operations")
	c.Register(&transferCmd{}, "operations")
	c.Register(&debtCmd{}, "operations")
	c.Register(&settleCmd{}, "operations")

	c.Register(&balanceCmd{}, "reports")
	c.Register(&logCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerDir = flag.String("ledger-dir", "", "Directory holding the group ledger files (one .jsonl per group). Defaults to $LAUSA_LEDGER_DIR or the current directory.")
var verbose = flag.Bool("v", false, "Log every applied operation to stderr")

// ledgerDirPath resolves the ledger directory, flag first, then environment,
// then the current directory. Resolution is lazy so the main package can load
// a .env file before any command runs.
func ledgerDirPath() string {
	if *ledgerDir != "" {
		return *ledgerDir
	}
	if dir := os.Getenv("LAUSA_LEDGER_DIR"); dir != "" {
		return dir
	}
	return "."
}

// appLogger returns the logger injected into ledgers, a console writer on
// stderr when -v is set and a no-op logger otherwise.
func appLogger() zerolog.Logger {
	if !*verbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// resolveLedgerFile resolves the ledger file for the given group name, or
// the only group in the ledger directory when the name is empty.
func resolveLedgerFile(name string) (string, error) {
	return collective.FindLedgerFile(ledgerDirPath(), name)
}

// decodeLedger loads and replays the ledger for a group. It returns the
// resolved filename so mutating commands can append to it.
func decodeLedger(name string) (*collective.Ledger, string, error) {
	filename, err := resolveLedgerFile(name)
	if err != nil {
		return nil, "", err
	}
	ledger, err := collective.LoadLedger(filename)
	if err != nil {
		return nil, "", err
	}
	ledger.SetLogger(appLogger())
	return ledger, filename, nil
}

// appendOperation appends a single committed operation to the group ledger
// file. The operation must already have been applied to a replayed ledger,
// so the file stays consistent with the in-memory state.
func appendOperation(filename string, op collective.Operation) subcommands.ExitStatus {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := collective.EncodeOperation(f, op); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s in %s\n", op.What(), filename)
	return subcommands.ExitSuccess
}
