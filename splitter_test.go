package collective

import (
	"errors"
	"slices"
	"testing"

	"github.com/lausa/collective/date"
)

func TestSplitExpense(t *testing.T) {
	on := date.MustParse("2025-06-01")

	testCases := []struct {
		name         string
		payer        string
		amount       int64 // minor units
		participants []string
		wantNet      map[string]int64 // net delta per account
	}{
		{
			// The canonical non-divisible case: 100.00 among 3. Base share
			// is 33.33, and the leftover cent goes to "alice", first in
			// lexicographic order.
			name:         "remainder of one cent",
			payer:        "alice",
			amount:       10000,
			participants: []string{"alice", "bob", "carol"},
			wantNet:      map[string]int64{"alice": 6666, "bob": -3333, "carol": -3333},
		},
		{
			name:         "even split",
			payer:        "bob",
			amount:       9000,
			participants: []string{"alice", "bob", "carol"},
			wantNet:      map[string]int64{"alice": -3000, "bob": 6000, "carol": -3000},
		},
		{
			name:         "payer not in participants is added",
			payer:        "dave",
			amount:       3000,
			participants: []string{"alice", "bob"},
			wantNet:      map[string]int64{"alice": -1000, "bob": -1000, "dave": 2000},
		},
		{
			name:         "remainder of two cents charged to first two ids",
			payer:        "carol",
			amount:       2000,
			participants: []string{"carol", "bob", "alice"},
			wantNet:      map[string]int64{"alice": -667, "bob": -667, "carol": 2000 - 666},
		},
		{
			name:         "duplicate participants are ignored",
			payer:        "alice",
			amount:       1000,
			participants: []string{"bob", "bob", "alice"},
			wantNet:      map[string]int64{"alice": 500, "bob": -500},
		},
		{
			name:         "solo expense",
			payer:        "alice",
			amount:       1234,
			participants: []string{"alice"},
			wantNet:      map[string]int64{"alice": 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			op, err := SplitExpense(on, tc.payer, Cents(tc.amount), tc.participants, "test")
			if err != nil {
				t.Fatalf("SplitExpense: %v", err)
			}
			if op.What() != KindExpense {
				t.Errorf("kind = %s, want expense", op.What())
			}

			var sum Money
			for e := range op.Entries() {
				sum = sum.Add(e.Delta)
			}
			if !sum.IsZero() {
				t.Errorf("deltas sum to %d minor units, want 0", sum.MinorUnits())
			}

			for account, want := range tc.wantNet {
				if got := op.Delta(account).MinorUnits(); got != want {
					t.Errorf("net delta for %s = %d, want %d", account, got, want)
				}
			}
		})
	}
}

func TestSplitExpense_Errors(t *testing.T) {
	on := date.MustParse("2025-06-01")

	if _, err := SplitExpense(on, "x", Cents(0), []string{"x", "y"}, ""); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero amount error = %v, want ErrInvalidAmount", err)
	}
	if _, err := SplitExpense(on, "x", Cents(-100), []string{"x", "y"}, ""); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("negative amount error = %v, want ErrInvalidAmount", err)
	}
	if _, err := SplitExpense(on, "x", Cents(100), nil, ""); !errors.Is(err, ErrInvalidParticipantSet) {
		t.Errorf("empty participants error = %v, want ErrInvalidParticipantSet", err)
	}
	if _, err := SplitExpense(on, "", Cents(100), []string{"x"}, ""); !errors.Is(err, ErrInvalidParticipantSet) {
		t.Errorf("missing payer error = %v, want ErrInvalidParticipantSet", err)
	}
	if _, err := SplitExpense(on, "x", Cents(100), []string{"x", ""}, ""); !errors.Is(err, ErrInvalidParticipantSet) {
		t.Errorf("empty participant id error = %v, want ErrInvalidParticipantSet", err)
	}
}

// The split must balance for every amount and group size, in particular when
// the group size does not divide the amount.
func TestSplitExpense_AlwaysBalanced(t *testing.T) {
	on := date.MustParse("2025-06-01")
	group := []string{"alice", "bob", "carol", "dave", "erin", "frank", "grace"}

	for n := 1; n <= len(group); n++ {
		for amount := int64(1); amount <= 500; amount++ {
			op, err := SplitExpense(on, group[0], Cents(amount), group[:n], "")
			if err != nil {
				t.Fatalf("SplitExpense(%d cents, %d participants): %v", amount, n, err)
			}
			var sum Money
			for e := range op.Entries() {
				sum = sum.Add(e.Delta)
			}
			if !sum.IsZero() {
				t.Fatalf("SplitExpense(%d cents, %d participants) deltas sum to %d", amount, n, sum.MinorUnits())
			}
		}
	}
}

// The remainder policy must not depend on the order participants are given in.
func TestSplitExpense_OrderIndependent(t *testing.T) {
	on := date.MustParse("2025-06-01")
	group := []string{"carol", "alice", "bob"}

	a, err := SplitExpense(on, "bob", Cents(1000), group, "")
	if err != nil {
		t.Fatalf("SplitExpense: %v", err)
	}
	shuffled := slices.Clone(group)
	slices.Reverse(shuffled)
	b, err := SplitExpense(on, "bob", Cents(1000), shuffled, "")
	if err != nil {
		t.Fatalf("SplitExpense: %v", err)
	}
	if !a.Equal(b) {
		t.Error("split depends on participant input order")
	}
}
