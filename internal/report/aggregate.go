package report

import (
	"sort"

	"ledger/internal/category"
	"ledger/internal/core"
)

type (
	// CategoryBucket is the summed amount for one resolved category label.
	CategoryBucket struct {
		Label  string
		Amount core.Money
	}

	// MemberBucket is the summed amount for one attributed member.
	MemberBucket struct {
		Name   string
		Amount core.Money
	}

	// Summary holds the aggregates derived from one filtered subset.
	Summary struct {
		Total      core.Money
		Count      int
		Categories []CategoryBucket
		Members    []MemberBucket
	}
)

// Aggregate computes the summary for an already filtered subset.
//
// Amounts accumulate as integer cents. Category buckets are keyed by the
// resolved display category, one bucket per distinct label, in first-seen
// order. Member buckets default absent names to "Unknown" and are sorted
// descending by amount; ties keep their first-seen order (stable sort). An
// empty subset yields a zero total and no buckets.
func Aggregate(subset []core.Transaction) Summary {
	s := Summary{Count: len(subset)}

	catIndex := make(map[string]int)
	memIndex := make(map[string]int)
	for _, t := range subset {
		s.Total.Cents += t.Amount.Cents

		label := category.Resolve(t)
		if i, ok := catIndex[label]; ok {
			s.Categories[i].Amount.Cents += t.Amount.Cents
		} else {
			catIndex[label] = len(s.Categories)
			s.Categories = append(s.Categories, CategoryBucket{Label: label, Amount: t.Amount})
		}

		name := t.Member()
		if i, ok := memIndex[name]; ok {
			s.Members[i].Amount.Cents += t.Amount.Cents
		} else {
			memIndex[name] = len(s.Members)
			s.Members = append(s.Members, MemberBucket{Name: name, Amount: t.Amount})
		}
	}

	sort.SliceStable(s.Members, func(i, j int) bool {
		return s.Members[i].Amount.Cents > s.Members[j].Amount.Cents
	})

	return s
}
