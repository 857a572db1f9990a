package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ledger/internal/core"
)

func tx(id int64, cents int64, cur core.Currency, item, user string, at time.Time) core.Transaction {
	return core.Transaction{
		ID:        id,
		Amount:    core.Money{Cents: cents},
		Currency:  cur,
		Item:      item,
		UserName:  user,
		CreatedAt: at,
	}
}

func TestFilter(t *testing.T) {
	may1 := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	may31 := time.Date(2024, 5, 31, 23, 59, 0, 0, time.UTC)
	june1 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	prevYearMay := time.Date(2023, 5, 15, 12, 0, 0, 0, time.UTC)

	txs := []core.Transaction{
		tx(1, 5000, core.CNY, "咖啡", "Alice", may1),
		tx(2, 3000, core.CNY, "地铁", "Bob", may31),
		tx(3, 2000, core.HKD, "午饭", "Alice", may1),
		tx(4, 1000, core.CNY, "电影", "Bob", june1),
		tx(5, 4000, core.CNY, "房租", "Alice", prevYearMay),
	}

	got := Filter(txs, core.CNY, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))

	assert.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestFilterRejectsOtherCurrencyAndMonth(t *testing.T) {
	anchor := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	txs := []core.Transaction{
		tx(1, 100, core.HKD, "", "", anchor),
		tx(2, 100, core.USDT, "", "", anchor),
		tx(3, 100, core.CNY, "", "", anchor.AddDate(0, 1, 0)),
	}
	assert.Empty(t, Filter(txs, core.CNY, anchor))
}

func TestFilterIsIdempotent(t *testing.T) {
	anchor := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	txs := []core.Transaction{
		tx(1, 100, core.CNY, "", "", anchor),
		tx(2, 200, core.HKD, "", "", anchor),
		tx(3, 300, core.CNY, "", "", anchor.AddDate(0, -1, 0)),
	}

	once := Filter(txs, core.CNY, anchor)
	twice := Filter(once, core.CNY, anchor)
	assert.Equal(t, once, twice)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	anchor := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	txs := []core.Transaction{
		tx(1, 100, core.CNY, "", "", anchor),
		tx(2, 200, core.HKD, "", "", anchor),
	}
	before := make([]core.Transaction, len(txs))
	copy(before, txs)

	_ = Filter(txs, core.CNY, anchor)
	assert.Equal(t, before, txs)
}

func TestFilterEmptyInput(t *testing.T) {
	assert.Empty(t, Filter(nil, core.CNY, time.Now()))
}
