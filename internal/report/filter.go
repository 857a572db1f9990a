// Package report derives the dashboard view from a transaction snapshot:
// currency/month filtering, totals, category and member buckets, and the
// display projections built on top of them.
//
// Every function here is pure: inputs are never mutated, results are
// recomputed from scratch on each call, and concurrent use needs no locking.
package report

import (
	"time"

	"ledger/internal/core"
)

// Filter returns the transactions in the given currency whose own timestamp
// falls in the same calendar month and year as anchor. Both predicates must
// hold; this is a conjunction, so the result is idempotent under repeated
// filtering with the same window.
func Filter(txs []core.Transaction, currency core.Currency, anchor time.Time) []core.Transaction {
	var out []core.Transaction
	for _, t := range txs {
		if t.Currency != currency {
			continue
		}
		if t.CreatedAt.Year() != anchor.Year() || t.CreatedAt.Month() != anchor.Month() {
			continue
		}
		out = append(out, t)
	}
	return out
}
