package collective

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sync"

	"github.com/lausa/collective/date"
	"github.com/rs/zerolog"
)

// Ledger is the append-only log of applied operations together with the
// registry of current balances it derives. It is the sole mutation point:
// Apply serializes writers, and after every successful apply the sum of all
// balances is exactly zero. The registry is always reconstructable by
// replaying the log from an empty ledger.
type Ledger struct {
	mu       sync.RWMutex
	ops      []Operation
	registry *Registry
	log      zerolog.Logger
}

// NewLedger creates an empty ledger. It does not log; inject a logger with
// SetLogger to trace applied operations.
func NewLedger() *Ledger {
	return &Ledger{
		registry: newRegistry(),
		log:      zerolog.Nop(),
	}
}

// SetLogger installs the logger used to trace applied operations.
func (l *Ledger) SetLogger(logger zerolog.Logger) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log = logger
}

// Apply validates and commits an operation: the registry is mutated for
// every entry and the operation is appended to the log, all-or-nothing.
// Validation completes before the first mutation, so a failed apply leaves
// no partial state behind.
//
// The zero-sum check is defensive: operation constructors cannot produce an
// unbalanced operation, so ErrUnbalancedOperation here indicates a
// programming error in the caller, fatal to the call but not to the ledger.
func (l *Ledger) Apply(op Operation) (Operation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(op.entries) == 0 {
		return Operation{}, fmt.Errorf("cannot apply the zero Operation")
	}
	var sum Money
	for _, e := range op.entries {
		sum = sum.Add(e.Delta)
	}
	if !sum.IsZero() {
		return Operation{}, fmt.Errorf("%w: %s deltas sum to %d minor units", ErrUnbalancedOperation, op.kind, sum.MinorUnits())
	}

	switch op.kind {
	case KindRemoveAccount:
		// Validate every removal before touching the registry.
		for _, e := range op.entries {
			b := l.registry.Balance(e.Account)
			if !l.registry.Has(e.Account) || !b.IsZero() {
				return Operation{}, fmt.Errorf("cannot remove account %q with balance %s", e.Account, b)
			}
		}
		for _, e := range op.entries {
			// Cannot fail: checked above, under the same lock.
			_ = l.registry.remove(e.Account)
		}
	default:
		for _, e := range op.entries {
			l.registry.register(e.Account)
			l.registry.applyDelta(e.Account, e.Delta)
		}
	}

	l.ops = append(l.ops, op)
	l.log.Info().
		Str("id", op.id).
		Str("kind", string(op.kind)).
		Stringer("date", op.date).
		Int("entries", len(op.entries)).
		Str("description", op.description).
		Msg("operation applied")
	return op, nil
}

// History returns a finite, restartable iterator over applied operations in
// application order. Each iteration works on a snapshot: operations applied
// after the iteration started are not observed.
func (l *Ledger) History() iter.Seq[Operation] {
	return func(yield func(Operation) bool) {
		l.mu.RLock()
		ops := slices.Clone(l.ops)
		l.mu.RUnlock()
		for _, op := range ops {
			if !yield(op) {
				return
			}
		}
	}
}

// Len returns the number of applied operations.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.ops)
}

// CurrentState returns an independent snapshot of all account balances.
func (l *Ledger) CurrentState() map[string]Money {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.registry.state()
}

// Balance returns the current balance of an account, zero for an unknown one.
func (l *Ledger) Balance(id string) Money {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.registry.Balance(id)
}

// Sum returns the sum of all balances. It is zero on any ledger built from
// balanced operations.
func (l *Ledger) Sum() Money {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.registry.Sum()
}

// Has reports whether an account is registered.
func (l *Ledger) Has(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.registry.Has(id)
}

// Balances yields each (id, balance) pair ordered by account id, from a
// consistent snapshot.
func (l *Ledger) Balances() iter.Seq2[string, Money] {
	return func(yield func(string, Money) bool) {
		snapshot := l.CurrentState()
		ids := slices.Collect(maps.Keys(snapshot))
		slices.Sort(ids)
		for _, id := range ids {
			if !yield(id, snapshot[id]) {
				return
			}
		}
	}
}

// Accounts returns the sorted list of account ids.
func (l *Ledger) Accounts() []string {
	var ids []string
	for id := range l.Balances() {
		ids = append(ids, id)
	}
	return ids
}

// Convenience recorders mirroring the CLI workflows. Each builds the
// operation and applies it in one step.

// AddAccount declares an account with a zero balance.
func (l *Ledger) AddAccount(on date.Date, id string) (Operation, error) {
	op, err := NewAddAccount(on, id)
	if err != nil {
		return Operation{}, err
	}
	return l.Apply(op)
}

// RemoveAccount removes an account; it fails while the balance is non-zero.
func (l *Ledger) RemoveAccount(on date.Date, id string) (Operation, error) {
	op, err := NewRemoveAccount(on, id)
	if err != nil {
		return Operation{}, err
	}
	return l.Apply(op)
}

// RecordExpense splits a shared expense and applies the resulting operation.
func (l *Ledger) RecordExpense(on date.Date, payer string, amount Money, participants []string, description string) (Operation, error) {
	op, err := SplitExpense(on, payer, amount, participants, description)
	if err != nil {
		return Operation{}, err
	}
	return l.Apply(op)
}

// RecordTransfer records a cash transfer between two accounts.
func (l *Ledger) RecordTransfer(on date.Date, from, to string, amount Money, description string) (Operation, error) {
	op, err := NewTransfer(on, from, to, amount, description)
	if err != nil {
		return Operation{}, err
	}
	return l.Apply(op)
}

// RecordDebt records a debt between two accounts without any cash moving.
func (l *Ledger) RecordDebt(on date.Date, creditor, debitor string, amount Money, subject string) (Operation, error) {
	op, err := NewDebt(on, creditor, debitor, amount, subject)
	if err != nil {
		return Operation{}, err
	}
	return l.Apply(op)
}
