package collective

import (
	"fmt"
	"maps"
	"slices"

	"github.com/lausa/collective/date"
)

// PlanSettlement computes a sequence of transfer operations that brings every
// balance in the given set to zero. The balances must already sum to zero;
// anything else fails with ErrUnbalancedLedger, since planning on an
// inconsistent ledger indicates corrupted state.
//
// The plan is greedy: the debitor with the largest deficit repeatedly pays the
// creditor with the largest surplus (ties broken by lexicographic account id),
// transferring min(deficit, surplus). Each transfer zeroes at least one
// account, so the plan holds at most accounts-1 operations. Minimizing the
// transfer count optimally is a harder combinatorial problem, out of scope
// here; the greedy bound is the documented guarantee.
//
// The returned operations are not applied: the caller feeds each into
// Ledger.Apply so that every settlement transfer shows up in the log like any
// other operation.
func PlanSettlement(on date.Date, balances map[string]Money) ([]Operation, error) {
	var sum Money
	for _, b := range balances {
		sum = sum.Add(b)
	}
	if !sum.IsZero() {
		return nil, fmt.Errorf("%w: balances sum to %d minor units", ErrUnbalancedLedger, sum.MinorUnits())
	}

	// Work on sorted copies for deterministic scanning.
	ids := slices.Collect(maps.Keys(balances))
	slices.Sort(ids)

	type account struct {
		id      string
		balance Money
	}
	var creditors, debitors []account
	for _, id := range ids {
		b := balances[id]
		switch {
		case b.IsPositive():
			creditors = append(creditors, account{id: id, balance: b})
		case b.IsNegative():
			debitors = append(debitors, account{id: id, balance: b})
		}
	}

	// largest returns the index of the account with the largest absolute
	// balance; the slices are id-sorted so the first hit wins ties.
	largest := func(accounts []account) int {
		best := 0
		for i, a := range accounts {
			if a.balance.Abs().GreaterThan(accounts[best].balance.Abs()) {
				best = i
			}
		}
		return best
	}

	var plan []Operation
	for len(debitors) > 0 && len(creditors) > 0 {
		di, ci := largest(debitors), largest(creditors)
		debitor, creditor := &debitors[di], &creditors[ci]

		transfer := debitor.balance.Abs()
		if creditor.balance.LessThan(transfer) {
			transfer = creditor.balance
		}

		op, err := newSettlement(on, debitor.id, creditor.id, transfer)
		if err != nil {
			return nil, err
		}
		plan = append(plan, op)

		debitor.balance = debitor.balance.Add(transfer)
		creditor.balance = creditor.balance.Sub(transfer)
		if debitor.balance.IsZero() {
			debitors = slices.Delete(debitors, di, di+1)
		}
		if creditor.balance.IsZero() {
			creditors = slices.Delete(creditors, ci, ci+1)
		}
	}
	return plan, nil
}
