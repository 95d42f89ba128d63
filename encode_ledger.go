package collective

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/lausa/collective/date"
)

// The ledger is persisted as a JSONL operation log, one operation per line,
// in application order. Replaying the log from an empty ledger reconstructs
// the exact balances, so the file is the single source of truth and stays
// human-readable and git-friendly.

// MarshalJSON implements the json.Marshaler interface for Operation, with a
// canonical field order.
func (o Operation) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", o.id)
	w.Append("kind", o.kind)
	w.Append("date", o.date)
	w.Optional("description", o.description)
	w.Append("entries", o.entries)
	return w.MarshalJSON()
}

// jsonOperation is a dedicated local struct to read one log line.
type jsonOperation struct {
	ID          string     `json:"id"`
	Kind        string     `json:"kind"`
	Date        date.Date  `json:"date"`
	Description string     `json:"description"`
	Entries     []struct {
		Account string `json:"account"`
		Delta   int64  `json:"delta"`
	} `json:"entries"`
}

// EncodeOperation writes a single operation as one JSONL line.
func EncodeOperation(w io.Writer, op Operation) error {
	data, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("could not encode operation %s: %w", op.ID(), err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write operation %s: %w", op.ID(), err)
	}
	return nil
}

// EncodeLedger writes the whole operation log as JSONL, in application order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for op := range l.History() {
		if err := EncodeOperation(w, op); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a JSONL operation log and replays every operation into
// a fresh ledger. Replaying goes through Apply, so a corrupt or unbalanced
// log fails loudly and the returned registry is the replayed state by
// construction.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var jop jsonOperation
		if err := json.Unmarshal(lineBytes, &jop); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", line, string(lineBytes), err)
		}
		kind, err := ParseKind(jop.Kind)
		if err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", line, err)
		}
		entries := make([]Entry, 0, len(jop.Entries))
		for _, e := range jop.Entries {
			entries = append(entries, Entry{Account: e.Account, Delta: Cents(e.Delta)})
		}
		op, err := restoreOperation(jop.ID, kind, jop.Date, jop.Description, entries)
		if err != nil {
			return nil, fmt.Errorf("invalid operation on line %d: %w", line, err)
		}
		if _, err := ledger.Apply(op); err != nil {
			return nil, fmt.Errorf("could not replay operation on line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger: %w", err)
	}
	return ledger, nil
}
