package collective

import (
	"errors"
	"testing"

	"github.com/lausa/collective/date"
)

func TestPlanSettlement(t *testing.T) {
	on := date.MustParse("2025-06-01")

	testCases := []struct {
		name     string
		balances map[string]int64 // minor units
		wantOps  int
	}{
		{
			name:     "two debitors one creditor",
			balances: map[string]int64{"alice": 6600, "bob": -3300, "carol": -3300},
			wantOps:  2,
		},
		{
			name:     "one debitor two creditors",
			balances: map[string]int64{"alice": 3300, "bob": 3300, "carol": -6600},
			wantOps:  2,
		},
		{
			name:     "single pair",
			balances: map[string]int64{"alice": 100, "bob": -100},
			wantOps:  1,
		},
		{
			name:     "already settled",
			balances: map[string]int64{"alice": 0, "bob": 0},
			wantOps:  0,
		},
		{
			name:     "empty",
			balances: map[string]int64{},
			wantOps:  0,
		},
		{
			name:     "chain of debts",
			balances: map[string]int64{"alice": 5000, "bob": -2000, "carol": -1500, "dave": -1000, "erin": -500},
			wantOps:  4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			balances := make(map[string]Money, len(tc.balances))
			for id, b := range tc.balances {
				balances[id] = Cents(b)
			}

			plan, err := PlanSettlement(on, balances)
			if err != nil {
				t.Fatalf("PlanSettlement: %v", err)
			}
			if len(plan) != tc.wantOps {
				t.Errorf("plan has %d operations, want %d", len(plan), tc.wantOps)
			}
			if len(plan) > len(tc.balances)-1 && len(tc.balances) > 0 {
				t.Errorf("plan has %d operations, exceeding the accounts-1 bound", len(plan))
			}

			// Applying the whole plan must zero every balance.
			l := NewLedger()
			for id, b := range balances {
				if b.IsZero() {
					continue
				}
				// Seed the ledger with the imbalance through a debt against a
				// scratch account, then cancel the scratch.
				seed, err := NewOperation(KindDebt, on, "seed", []Entry{
					{Account: id, Delta: b},
					{Account: "scratch", Delta: b.Neg()},
				})
				if err != nil {
					t.Fatalf("seed: %v", err)
				}
				if _, err := l.Apply(seed); err != nil {
					t.Fatalf("seed apply: %v", err)
				}
			}
			scratch := l.Balance("scratch")
			if !scratch.IsZero() {
				t.Fatalf("scratch account not neutral: %d", scratch.MinorUnits())
			}

			for _, op := range plan {
				if op.What() != KindSettlement {
					t.Errorf("plan operation kind = %s, want settlement", op.What())
				}
				if _, err := l.Apply(op); err != nil {
					t.Fatalf("applying plan operation: %v", err)
				}
			}
			for id := range balances {
				if got := l.Balance(id); !got.IsZero() {
					t.Errorf("after settlement %s has balance %d, want 0", id, got.MinorUnits())
				}
			}
		})
	}
}

func TestPlanSettlement_Unbalanced(t *testing.T) {
	on := date.MustParse("2025-06-01")
	balances := map[string]Money{"alice": Cents(100), "bob": Cents(-99)}
	if _, err := PlanSettlement(on, balances); !errors.Is(err, ErrUnbalancedLedger) {
		t.Errorf("PlanSettlement error = %v, want ErrUnbalancedLedger", err)
	}
}

func TestPlanSettlement_Deterministic(t *testing.T) {
	on := date.MustParse("2025-06-01")
	// Equal deficits and surpluses force every tie-break.
	balances := map[string]Money{
		"dave":  Cents(-500),
		"alice": Cents(500),
		"bob":   Cents(500),
		"carol": Cents(-500),
	}

	first, err := PlanSettlement(on, balances)
	if err != nil {
		t.Fatalf("PlanSettlement: %v", err)
	}
	for range 10 {
		again, err := PlanSettlement(on, balances)
		if err != nil {
			t.Fatalf("PlanSettlement: %v", err)
		}
		if len(again) != len(first) {
			t.Fatalf("plan length changed between runs: %d then %d", len(first), len(again))
		}
		for i := range first {
			if !first[i].Equal(again[i]) {
				t.Fatalf("plan operation %d changed between runs", i)
			}
		}
	}

	// With all ties, lexicographic order decides: carol pays alice first.
	if got := first[0].Description(); got != "carol pays alice" {
		t.Errorf("first transfer = %q, want %q", got, "carol pays alice")
	}
}

func TestPlanSettlement_SplitRepayment(t *testing.T) {
	// balances {alice: +66, bob: -33, carol: -33} settle with bob and carol
	// each paying alice 33.
	on := date.MustParse("2025-06-01")
	balances := map[string]Money{"alice": Cents(66), "bob": Cents(-33), "carol": Cents(-33)}

	plan, err := PlanSettlement(on, balances)
	if err != nil {
		t.Fatalf("PlanSettlement: %v", err)
	}
	if len(plan) != 2 {
		t.Fatalf("plan has %d operations, want 2", len(plan))
	}
	for _, op := range plan {
		if got := op.Delta("alice"); !got.Equal(Cents(-33)) {
			t.Errorf("alice delta = %d, want -33", got.MinorUnits())
		}
	}
}
