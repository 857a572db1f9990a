package category

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ledger/internal/core"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		tx   core.Transaction
		want string
	}{
		{
			name: "explicit category wins over keywords",
			tx:   core.Transaction{Category: "宠物", Item: "麦当劳"},
			want: "宠物",
		},
		{
			name: "explicit category kept without keywords",
			tx:   core.Transaction{Category: "礼物"},
			want: "礼物",
		},
		{
			name: "category with surrounding whitespace is trimmed",
			tx:   core.Transaction{Category: "  礼物  "},
			want: "礼物",
		},
		{
			name: "placeholder category falls through to keywords",
			tx:   core.Transaction{Category: Placeholder, Item: "麦当劳"},
			want: Food,
		},
		{
			name: "everything empty resolves to placeholder",
			tx:   core.Transaction{},
			want: Placeholder,
		},
		{
			name: "placeholder with no keyword match stays placeholder",
			tx:   core.Transaction{Category: Placeholder, Item: "不知道"},
			want: Placeholder,
		},
		{
			name: "food keyword in item",
			tx:   core.Transaction{Item: "星巴克咖啡"},
			want: Food,
		},
		{
			name: "transport keyword in item",
			tx:   core.Transaction{Item: "地铁"},
			want: Transport,
		},
		{
			name: "keyword only in raw text",
			tx:   core.Transaction{RawText: "滴滴出行 行程单"},
			want: Transport,
		},
		{
			name: "latin keyword is matched case-insensitively",
			tx:   core.Transaction{Item: "McDonald's lunch"},
			want: Food,
		},
		{
			name: "FPS transfer uppercase",
			tx:   core.Transaction{RawText: "FPS 轉數快 HK$200"},
			want: Transfer,
		},
		{
			name: "transfer beats food when both match",
			tx:   core.Transaction{Item: "转账 饭钱"},
			want: Transfer,
		},
		{
			name: "food beats transport when both match",
			tx:   core.Transaction{Item: "超市 加油站便利店"},
			want: Food,
		},
		{
			name: "housing keyword",
			tx:   core.Transaction{Item: "十月房租"},
			want: Housing,
		},
		{
			name: "entertainment keyword",
			tx:   core.Transaction{Item: "周末电影票"},
			want: Entertainment,
		},
		{
			name: "medical keyword",
			tx:   core.Transaction{RawText: "医院挂号费"},
			want: Medical,
		},
		{
			name: "shopping keyword",
			tx:   core.Transaction{Item: "淘宝订单"},
			want: Shopping,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.tx))
		})
	}
}

func TestResolveDoesNotMutate(t *testing.T) {
	tx := core.Transaction{Category: Placeholder, Item: "麦当劳"}
	before := tx
	_ = Resolve(tx)
	assert.Equal(t, before, tx)
}

func TestResolveIsIdempotent(t *testing.T) {
	tx := core.Transaction{Item: "奶茶", RawText: "收据"}
	first := Resolve(tx)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, Resolve(tx))
	}
}

func TestLabels(t *testing.T) {
	labels := Labels()
	assert.Equal(t, []string{Transfer, Food, Transport, Shopping, Housing, Entertainment, Medical, Placeholder}, labels)
}
