package collective

import "errors"

// Errors returned by the ledger core. Callers classify failures with
// errors.Is; the concrete messages carry the offending values.
var (
	// ErrInvalidAmount reports a malformed or non-positive amount where a
	// positive one is required.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrPrecisionLoss reports an amount that cannot be represented exactly
	// in minor currency units.
	ErrPrecisionLoss = errors.New("precision loss")

	// ErrInvalidParticipantSet reports an empty participant set.
	ErrInvalidParticipantSet = errors.New("invalid participant set")

	// ErrUnbalancedOperation reports an operation whose deltas do not sum to
	// zero. Operation constructors cannot produce one, so hitting this on
	// Apply indicates a programming error in the caller.
	ErrUnbalancedOperation = errors.New("unbalanced operation")

	// ErrUnbalancedLedger reports balances that do not sum to zero where a
	// balanced set is a precondition. It indicates corrupted state, not a
	// normal outcome.
	ErrUnbalancedLedger = errors.New("unbalanced ledger")
)
