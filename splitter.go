package collective

import (
	"fmt"
	"slices"

	"github.com/lausa/collective/date"
)

// SplitExpense builds the balanced operation for an expense paid by one
// account on behalf of a group.
//
// Every participant (payer included; the payer is added to the group if
// absent) is charged a share of the amount, and the payer is credited the
// full amount. Shares are computed by integer division in minor units.
//
// Remainder policy: when the amount does not divide evenly among the N
// participants, the r := amount mod N leftover minor units are charged, one
// each, to the first r participants in lexicographic account id order. The
// policy is deterministic and independent of the input order, so re-running
// a split always yields the same deltas.
func SplitExpense(on date.Date, payer string, amount Money, participants []string, description string) (Operation, error) {
	if payer == "" {
		return Operation{}, fmt.Errorf("%w: expense payer is missing", ErrInvalidParticipantSet)
	}
	if !amount.IsPositive() {
		return Operation{}, fmt.Errorf("%w: expense amount must be positive, got %s", ErrInvalidAmount, amount)
	}
	if len(participants) == 0 {
		return Operation{}, fmt.Errorf("%w: expense has no participants", ErrInvalidParticipantSet)
	}

	// Normalize the group: dedupe, include the payer, fix the order.
	group := slices.Clone(participants)
	group = append(group, payer)
	slices.Sort(group)
	group = slices.Compact(group)
	if slices.Contains(group, "") {
		return Operation{}, fmt.Errorf("%w: participant with an empty account id", ErrInvalidParticipantSet)
	}

	share, remainder := amount.DivMod(len(group))

	entries := make([]Entry, 0, len(group)+1)
	entries = append(entries, Entry{Account: payer, Delta: amount})
	for i, id := range group {
		charge := share
		if int64(i) < remainder {
			charge = charge.Add(Cents(1))
		}
		entries = append(entries, Entry{Account: id, Delta: charge.Neg()})
	}

	// Zero sum holds by construction: share*N + remainder == amount.
	return NewOperation(KindExpense, on, description, entries)
}
