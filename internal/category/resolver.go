// Package category assigns a semantic spending category to a transaction.
//
// Stored categories are authoritative unless they are absent or the 其他
// placeholder; in that case the resolver falls back to keyword matching over
// the item description and the raw OCR text.
package category

import (
	"strings"

	"ledger/internal/core"
)

// Placeholder is the stored category value that means "uncategorized". It is
// treated the same as an absent category, so resolution stays re-derivable
// from item and raw text.
const Placeholder = "其他"

// Category labels produced by the resolver.
const (
	Transfer      = "转账"
	Food          = "餐饮"
	Transport     = "交通"
	Shopping      = "购物"
	Housing       = "居住"
	Entertainment = "娱乐"
	Medical       = "医疗"
)

type rule struct {
	label    string
	keywords []string
}

// rules is evaluated top to bottom; the first keyword set that matches wins.
// Text can match several sets, so the order here is the priority order.
var rules = []rule{
	{Transfer, []string{"转账", "fps", "轉帳", "轉賬", "转數快"}},
	{Food, []string{"餐", "饭", "午饭", "晚饭", "早餐", "吃饭", "超市", "买菜", "咖啡", "奶茶", "星巴克", "麦当劳", "mcdonald", "kfc"}},
	{Transport, []string{"打车", "出租", "地铁", "公交", "的士", "巴士", "mtr", "滴滴", "停车", "加油"}},
	{Shopping, []string{"快递", "顺丰", "菜鸟", "淘宝", "京东", "购物", "买衣服", "买鞋"}},
	{Housing, []string{"房租", "水费", "电费", "燃气", "物业"}},
	{Entertainment, []string{"电影", "游戏", "旅游", "ktv"}},
	{Medical, []string{"医院", "药", "体检", "看病"}},
}

// Labels returns every label the resolver can produce, priority order first
// and the placeholder last.
func Labels() []string {
	out := make([]string, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.label)
	}
	return append(out, Placeholder)
}

// Resolve returns the display category for a transaction. It is a total
// function: an explicit non-placeholder stored category is returned
// unchanged, otherwise the keyword rules are consulted over the lowercased
// item + raw text, and if nothing matches the placeholder is returned. The
// transaction itself is never modified.
func Resolve(t core.Transaction) string {
	base := strings.TrimSpace(t.Category)
	if base != "" && base != Placeholder {
		return base
	}

	src := strings.ToLower(t.Item + " " + t.RawText)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(src, kw) {
				return r.label
			}
		}
	}

	if base != "" {
		return base
	}
	return Placeholder
}
