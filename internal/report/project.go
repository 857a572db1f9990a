package report

import (
	"sort"
	"time"

	"ledger/internal/core"
)

// RecentLimit is how many records the recent-activity view shows.
const RecentLimit = 5

type (
	SortKey   string
	SortOrder string
)

const (
	SortCreatedAt SortKey = "created_at"
	SortAmount    SortKey = "amount"

	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Recent returns up to limit transactions ordered newest first. The input
// slice is left untouched; ties keep the subset order.
func Recent(subset []core.Transaction, limit int) []core.Transaction {
	out := make([]core.Transaction, len(subset))
	copy(out, subset)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Ledger returns a sorted copy of the subset for the full table view. An
// empty or unknown sort key keeps the subset's own order. The input is never
// mutated.
func Ledger(subset []core.Transaction, key SortKey, order SortOrder) []core.Transaction {
	out := make([]core.Transaction, len(subset))
	copy(out, subset)

	var less func(a, b core.Transaction) bool
	switch key {
	case SortCreatedAt:
		less = func(a, b core.Transaction) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortAmount:
		less = func(a, b core.Transaction) bool { return a.Amount.Cents < b.Amount.Cents }
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		if order == SortDesc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// Slice is one proportional chart entry for a category bucket.
type Slice struct {
	Label string
	Value core.Money
	Color string
}

// Pie converts category buckets into chart slices using the currency's color
// map. Zero-valued buckets stay in the result as zero-size slices; only a
// fully empty bucket list yields nil, which callers render as an explicit
// no-data state.
func Pie(buckets []CategoryBucket, currency core.Currency) []Slice {
	if len(buckets) == 0 {
		return nil
	}
	out := make([]Slice, 0, len(buckets))
	for i, b := range buckets {
		out = append(out, Slice{
			Label: b.Label,
			Value: b.Amount,
			Color: CategoryColor(currency, b.Label, i),
		})
	}
	return out
}

// MemberRow is one entry of the member ranking with its progress fraction.
type MemberRow struct {
	Name     string
	Amount   core.Money
	Fraction float64
}

// MemberRows attaches the fill fraction value/total to each member bucket.
// A zero total yields zero fractions instead of dividing by zero.
func MemberRows(buckets []MemberBucket, total core.Money) []MemberRow {
	if len(buckets) == 0 {
		return nil
	}
	out := make([]MemberRow, 0, len(buckets))
	for _, b := range buckets {
		row := MemberRow{Name: b.Name, Amount: b.Amount}
		if total.Cents > 0 {
			row.Fraction = float64(b.Amount.Cents) / float64(total.Cents)
		}
		out = append(out, row)
	}
	return out
}

// Window is the active (currency, month) selection. Changing either side
// forces a full re-filter and re-aggregation of the snapshot; aggregates are
// never patched incrementally.
type Window struct {
	Currency core.Currency
	Month    time.Time
}

// Build runs the whole pipeline for one window: filter, aggregate, project.
func Build(txs []core.Transaction, w Window) (Summary, []core.Transaction) {
	subset := Filter(txs, w.Currency, w.Month)
	return Aggregate(subset), subset
}
