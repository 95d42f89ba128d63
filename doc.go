// Package collective implements a double-entry style ledger for group
// accounting: a set of accounts sharing expenses and settling debts among
// themselves.
//
// The core functionalities include:
//   - Exact money arithmetic in minor currency units, with explicit
//     remainder extraction so that no cent is ever silently lost.
//   - An append-only ledger of zero-sum operations. After every applied
//     operation the sum of all account balances is exactly zero, and the
//     current balances are always reconstructable by replaying the log.
//   - An expense splitter producing balanced operations for expenses
//     shared by a group, with a deterministic remainder policy.
//   - A settlement planner computing a short sequence of transfers that
//     brings every balance back to zero.
//   - Data persistence as a human-readable, version-controllable JSONL
//     operation log with deterministic replay.
//
// This package serves as the foundational logic for the `lausa`
// command-line tool; rendering and the CLI live in their own packages and
// only consume the interfaces defined here.
package collective
