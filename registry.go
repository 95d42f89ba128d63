package collective

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Registry maps account ids to their current balance. It is owned
// exclusively by a Ledger: every mutation goes through Ledger.Apply, which
// serializes writers and enforces the zero-sum invariant over a whole
// operation.
type Registry struct {
	balances map[string]Money
}

func newRegistry() *Registry {
	return &Registry{balances: make(map[string]Money)}
}

// Balance returns the current balance for the given account, and zero for an
// unknown one. Reading never creates the account.
func (r *Registry) Balance(id string) Money {
	return r.balances[id]
}

// Has reports whether the account exists in the registry.
func (r *Registry) Has(id string) bool {
	_, ok := r.balances[id]
	return ok
}

// Len returns the number of registered accounts.
func (r *Registry) Len() int { return len(r.balances) }

// Sum returns the sum of all balances. On a consistent registry it is zero.
func (r *Registry) Sum() Money {
	var sum Money
	for _, b := range r.balances {
		sum = sum.Add(b)
	}
	return sum
}

// Accounts yields each (id, balance) pair ordered by account id.
func (r *Registry) Accounts() iter.Seq2[string, Money] {
	return func(yield func(string, Money) bool) {
		ids := slices.Collect(maps.Keys(r.balances))
		slices.Sort(ids)
		for _, id := range ids {
			if !yield(id, r.balances[id]) {
				return
			}
		}
	}
}

// applyDelta mutates one balance, creating the account on first reference.
// Only Ledger.Apply calls it, after validating the whole batch.
func (r *Registry) applyDelta(id string, delta Money) {
	r.balances[id] = r.balances[id].Add(delta)
}

// register creates the account with a zero balance if it does not exist yet.
func (r *Registry) register(id string) {
	if _, ok := r.balances[id]; !ok {
		r.balances[id] = Money{}
	}
}

// remove deletes an account. Removal is only permitted at zero balance,
// which preserves the global invariant trivially.
func (r *Registry) remove(id string) error {
	b, ok := r.balances[id]
	if !ok {
		return fmt.Errorf("unknown account %q", id)
	}
	if !b.IsZero() {
		return fmt.Errorf("cannot remove account %q with non-zero balance %s", id, b)
	}
	delete(r.balances, id)
	return nil
}

// state returns an independent copy of all balances.
func (r *Registry) state() map[string]Money {
	return maps.Clone(r.balances)
}
