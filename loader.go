package collective

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultLedgerFile is the ledger filename used when none is configured.
const DefaultLedgerFile = "ledger.jsonl"

// LoadLedger reads and replays the ledger file at the given path.
func LoadLedger(filename string) (*Ledger, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file: %w", err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not load ledger %q: %w", filename, err)
	}
	return ledger, nil
}

// SaveLedger writes the whole ledger to the given path in canonical form.
// The file is written to a sibling temp file first and renamed into place,
// so a crash mid-write cannot truncate the log.
func SaveLedger(filename string, l *Ledger) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp*")
	if err != nil {
		return fmt.Errorf("could not create temp ledger file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeLedger(tmp, l); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write ledger %q: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temp ledger file: %w", err)
	}
	return os.Rename(tmp.Name(), filename)
}

// FindLedgerFile resolves which ledger file to use in a directory holding
// one file per group.
//
// With a name, it resolves to <dir>/<name>.jsonl. Without one, a single
// .jsonl file in the directory is picked up, an empty directory falls back
// to the default filename, and several files are an error asking the user
// to choose.
func FindLedgerFile(dir, name string) (string, error) {
	if name != "" {
		return filepath.Join(dir, strings.TrimSuffix(name, ".jsonl")+".jsonl"), nil
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.jsonl"))
	if err != nil {
		return "", fmt.Errorf("could not scan %q for ledgers: %w", dir, err)
	}
	switch len(matches) {
	case 0:
		return filepath.Join(dir, DefaultLedgerFile), nil
	case 1:
		return matches[0], nil
	default:
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, strings.TrimSuffix(filepath.Base(m), ".jsonl"))
		}
		return "", fmt.Errorf("multiple ledgers found in %q (%s), pick one with -l", dir, strings.Join(names, ", "))
	}
}
