package renderer

import (
	"fmt"

	"github.com/lausa/collective"
)

// Operation renders an operation to a one-line string.
func Operation(op collective.Operation) string {
	switch op.What() {
	case collective.KindExpense:
		payer, amount := payerOf(op)
		if op.Description() != "" {
			return fmt.Sprintf("%s paid %s for %q, shared by %d", payer, amount, op.Description(), op.Len()-1)
		}
		return fmt.Sprintf("%s paid %s, shared by %d", payer, amount, op.Len()-1)
	case collective.KindSettlement, collective.KindTransfer:
		from, to, amount := endpoints(op)
		return fmt.Sprintf("%s paid %s to %s", from, amount, to)
	case collective.KindDebt:
		creditor, debitor, amount := endpoints(op)
		if op.Description() != "" {
			return fmt.Sprintf("%s owes %s to %s for %q", debitor, amount, creditor, op.Description())
		}
		return fmt.Sprintf("%s owes %s to %s", debitor, amount, creditor)
	case collective.KindAddAccount:
		return fmt.Sprintf("added account %s", firstAccount(op))
	case collective.KindRemoveAccount:
		return fmt.Sprintf("removed account %s", firstAccount(op))
	default:
		return op.String()
	}
}

// payerOf returns the credited account of an expense and the full amount it
// advanced. Expense operations list the payer credit first.
func payerOf(op collective.Operation) (string, collective.Money) {
	for e := range op.Entries() {
		return e.Account, e.Delta
	}
	return "", collective.Money{}
}

// endpoints returns the positive side, the negative side and the transferred
// amount of a two-entry operation.
func endpoints(op collective.Operation) (from, to string, amount collective.Money) {
	for e := range op.Entries() {
		if e.Delta.IsPositive() {
			from, amount = e.Account, e.Delta
		} else if e.Delta.IsNegative() {
			to = e.Account
		}
	}
	return from, to, amount
}

func firstAccount(op collective.Operation) string {
	for e := range op.Entries() {
		return e.Account
	}
	return ""
}
