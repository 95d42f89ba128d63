package collective

import (
	"fmt"
	"iter"
	"slices"

	"github.com/google/uuid"
	"github.com/lausa/collective/date"
)

// Kind is a typed string identifying what an operation records.
type Kind string

// Operation kinds appearing in the ledger log.
const (
	KindExpense       Kind = "expense"
	KindSettlement    Kind = "settlement"
	KindTransfer      Kind = "transfer"
	KindDebt          Kind = "debt"
	KindAddAccount    Kind = "add-account"
	KindRemoveAccount Kind = "remove-account"
)

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindExpense, KindSettlement, KindTransfer, KindDebt, KindAddAccount, KindRemoveAccount:
		return k, nil
	default:
		return "", fmt.Errorf("unknown operation kind: %q", s)
	}
}

// Entry is one balance change within an operation.
type Entry struct {
	Account string `json:"account"`
	Delta   Money  `json:"delta"`
}

// Operation is an immutable, named batch of balance changes whose deltas sum
// to exactly zero. It is the atomic unit of ledger change: the ledger
// archives operations but operations never reference the ledger.
type Operation struct {
	id          string
	kind        Kind
	date        date.Date
	description string
	entries     []Entry
}

// NewOperation builds an operation from explicit entries. The entry order is
// preserved: it is part of the value. It fails with ErrUnbalancedOperation
// when the deltas do not sum to exactly zero.
func NewOperation(kind Kind, on date.Date, description string, entries []Entry) (Operation, error) {
	return restoreOperation(uuid.NewString(), kind, on, description, entries)
}

// restoreOperation is NewOperation with a caller-provided id, used when
// replaying a persisted log.
func restoreOperation(id string, kind Kind, on date.Date, description string, entries []Entry) (Operation, error) {
	if len(entries) == 0 {
		return Operation{}, fmt.Errorf("%s operation has no entries", kind)
	}
	sum := Money{}
	for _, e := range entries {
		if e.Account == "" {
			return Operation{}, fmt.Errorf("%s operation has an entry with an empty account id", kind)
		}
		sum = sum.Add(e.Delta)
	}
	if !sum.IsZero() {
		return Operation{}, fmt.Errorf("%w: %s deltas sum to %d minor units", ErrUnbalancedOperation, kind, sum.MinorUnits())
	}
	if on.IsZero() {
		on = date.Today()
	}
	return Operation{
		id:          id,
		kind:        kind,
		date:        on,
		description: description,
		entries:     slices.Clone(entries),
	}, nil
}

// ID returns the generated unique identifier of the operation.
func (o Operation) ID() string { return o.id }

// What returns the kind of the operation (e.g. "expense", "settlement").
func (o Operation) What() Kind { return o.kind }

// When returns the date on which the operation was recorded.
func (o Operation) When() date.Date { return o.date }

// Description returns the free-form note attached to the operation.
func (o Operation) Description() string { return o.description }

// Len returns the number of entries.
func (o Operation) Len() int { return len(o.entries) }

// Entries returns an iterator over the operation entries, in order.
func (o Operation) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range o.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Delta returns the balance change this operation applies to the given
// account, summing over entries, and zero for accounts it does not touch.
func (o Operation) Delta(account string) Money {
	var sum Money
	for _, e := range o.entries {
		if e.Account == account {
			sum = sum.Add(e.Delta)
		}
	}
	return sum
}

// Equal reports whether two operations record the same change. The generated
// id is ignored: two independently built identical operations are equal.
func (o Operation) Equal(other Operation) bool {
	if o.kind != other.kind || o.date != other.date || o.description != other.description {
		return false
	}
	return slices.EqualFunc(o.entries, other.entries, func(a, b Entry) bool {
		return a.Account == b.Account && a.Delta.Equal(b.Delta)
	})
}

// String renders the operation as a single human-readable line.
func (o Operation) String() string {
	if o.description == "" {
		return fmt.Sprintf("%s %s (%d entries)", o.date, o.kind, len(o.entries))
	}
	return fmt.Sprintf("%s %s %q", o.date, o.kind, o.description)
}

// NewTransfer records cash moved from one account to another, typically a
// manual settlement outside a plan. Paying cash increases what the group
// owes the sender: {from: +amount, to: -amount}.
func NewTransfer(on date.Date, from, to string, amount Money, description string) (Operation, error) {
	if !amount.IsPositive() {
		return Operation{}, fmt.Errorf("%w: transfer amount must be positive, got %s", ErrInvalidAmount, amount)
	}
	if from == to {
		return Operation{}, fmt.Errorf("transfer endpoints must differ, got %q twice", from)
	}
	return NewOperation(KindTransfer, on, description, []Entry{
		{Account: from, Delta: amount},
		{Account: to, Delta: amount.Neg()},
	})
}

// NewDebt records that one account owes another a given amount, without any
// cash moving: {creditor: +amount, debitor: -amount}.
func NewDebt(on date.Date, creditor, debitor string, amount Money, subject string) (Operation, error) {
	if !amount.IsPositive() {
		return Operation{}, fmt.Errorf("%w: debt amount must be positive, got %s", ErrInvalidAmount, amount)
	}
	if creditor == debitor {
		return Operation{}, fmt.Errorf("debt endpoints must differ, got %q twice", creditor)
	}
	return NewOperation(KindDebt, on, subject, []Entry{
		{Account: creditor, Delta: amount},
		{Account: debitor, Delta: amount.Neg()},
	})
}

// NewAddAccount declares an account so it appears in reports before its
// first expense. The single zero entry keeps the log replayable.
func NewAddAccount(on date.Date, id string) (Operation, error) {
	return NewOperation(KindAddAccount, on, "", []Entry{{Account: id}})
}

// NewRemoveAccount removes an account from the registry. Applying it fails
// unless the balance is zero.
func NewRemoveAccount(on date.Date, id string) (Operation, error) {
	return NewOperation(KindRemoveAccount, on, "", []Entry{{Account: id}})
}

// newSettlement builds one transfer of a settlement plan.
func newSettlement(on date.Date, debitor, creditor string, amount Money) (Operation, error) {
	return NewOperation(KindSettlement, on, fmt.Sprintf("%s pays %s", debitor, creditor), []Entry{
		{Account: debitor, Delta: amount},
		{Account: creditor, Delta: amount.Neg()},
	})
}
