package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger/internal/category"
	"ledger/internal/core"
)

func day(d int) time.Time {
	return time.Date(2024, 5, d, 12, 0, 0, 0, time.UTC)
}

func TestRecentNewestFirstCapped(t *testing.T) {
	var txs []core.Transaction
	for i := 1; i <= 8; i++ {
		txs = append(txs, tx(int64(i), 100, core.CNY, "", "", day(i)))
	}

	got := Recent(txs, RecentLimit)

	require.Len(t, got, RecentLimit)
	assert.Equal(t, int64(8), got[0].ID)
	assert.Equal(t, int64(4), got[4].ID)
}

func TestRecentShorterThanLimit(t *testing.T) {
	txs := []core.Transaction{
		tx(1, 100, core.CNY, "", "", day(2)),
		tx(2, 100, core.CNY, "", "", day(5)),
	}

	got := Recent(txs, RecentLimit)

	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)
}

func TestRecentDoesNotMutateInput(t *testing.T) {
	txs := []core.Transaction{
		tx(1, 100, core.CNY, "", "", day(1)),
		tx(2, 100, core.CNY, "", "", day(9)),
		tx(3, 100, core.CNY, "", "", day(4)),
	}
	before := make([]core.Transaction, len(txs))
	copy(before, txs)

	_ = Recent(txs, RecentLimit)
	assert.Equal(t, before, txs)
}

func TestLedgerSortAccessors(t *testing.T) {
	txs := []core.Transaction{
		tx(1, 300, core.CNY, "", "", day(2)),
		tx(2, 100, core.CNY, "", "", day(9)),
		tx(3, 200, core.CNY, "", "", day(4)),
	}
	before := make([]core.Transaction, len(txs))
	copy(before, txs)

	tests := []struct {
		name    string
		key     SortKey
		order   SortOrder
		wantIDs []int64
	}{
		{"created_at asc", SortCreatedAt, SortAsc, []int64{1, 3, 2}},
		{"created_at desc", SortCreatedAt, SortDesc, []int64{2, 3, 1}},
		{"amount asc", SortAmount, SortAsc, []int64{2, 3, 1}},
		{"amount desc", SortAmount, SortDesc, []int64{1, 3, 2}},
		{"default keeps input order", "", "", []int64{1, 2, 3}},
		{"unknown key keeps input order", "member", SortAsc, []int64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ledger(txs, tt.key, tt.order)
			ids := make([]int64, len(got))
			for i, g := range got {
				ids[i] = g.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
			// the underlying subset is shared and must stay untouched
			assert.Equal(t, before, txs)
		})
	}
}

func TestPieKeepsZeroValueSlices(t *testing.T) {
	buckets := []CategoryBucket{
		{Label: category.Food, Amount: core.Money{Cents: 5000}},
		{Label: category.Transport, Amount: core.Money{Cents: 0}},
	}

	got := Pie(buckets, core.CNY)

	require.Len(t, got, 2)
	assert.Equal(t, category.Transport, got[1].Label)
	assert.Equal(t, int64(0), got[1].Value.Cents)
}

func TestPieEmptyBucketsIsNoData(t *testing.T) {
	assert.Nil(t, Pie(nil, core.CNY))
	assert.Nil(t, Pie([]CategoryBucket{}, core.HKD))
}

func TestPieColors(t *testing.T) {
	buckets := []CategoryBucket{
		{Label: category.Food, Amount: core.Money{Cents: 100}},
		{Label: "猫粮", Amount: core.Money{Cents: 100}},
	}

	cny := Pie(buckets, core.CNY)
	hkd := Pie(buckets, core.HKD)

	// per-currency map for known labels, fallback palette for the rest
	assert.Equal(t, "#1677ff", cny[0].Color)
	assert.Equal(t, "#fa8c16", hkd[0].Color)
	assert.Equal(t, fallbackPalette[1], cny[1].Color)
}

func TestMemberRowsFractions(t *testing.T) {
	buckets := []MemberBucket{
		{Name: "Alice", Amount: core.Money{Cents: 5000}},
		{Name: "Bob", Amount: core.Money{Cents: 3000}},
	}

	rows := MemberRows(buckets, core.Money{Cents: 8000})

	require.Len(t, rows, 2)
	assert.InDelta(t, 0.625, rows[0].Fraction, 1e-9)
	assert.InDelta(t, 0.375, rows[1].Fraction, 1e-9)
}

func TestMemberRowsZeroTotal(t *testing.T) {
	buckets := []MemberBucket{
		{Name: "Alice", Amount: core.Money{Cents: 0}},
	}

	rows := MemberRows(buckets, core.Money{Cents: 0})

	require.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].Fraction)
}

func TestBuildPipeline(t *testing.T) {
	txs := []core.Transaction{
		tx(1, 5000, core.CNY, "星巴克咖啡", "Alice", day(1)),
		tx(2, 3000, core.CNY, "地铁", "Bob", day(2)),
		tx(3, 9000, core.HKD, "午饭", "Alice", day(3)),
	}

	summary, subset := Build(txs, Window{Currency: core.CNY, Month: day(15)})

	assert.Len(t, subset, 2)
	assert.Equal(t, int64(8000), summary.Total.Cents)
}
