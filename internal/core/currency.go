package core

// Currency is the closed set of ledger currencies. Every transaction belongs
// to exactly one currency bucket; there is no coercion between them.
type Currency string

const (
	CNY  Currency = "CNY"
	HKD  Currency = "HKD"
	USDT Currency = "USDT"
)

// Currencies lists the supported currencies in display order.
var Currencies = []Currency{CNY, HKD, USDT}

func (c Currency) Valid() bool {
	switch c {
	case CNY, HKD, USDT:
		return true
	}
	return false
}

// Symbol returns the fixed display symbol for the currency.
func (c Currency) Symbol() string {
	switch c {
	case CNY:
		return "¥"
	case HKD:
		return "HK$"
	case USDT:
		return "₮"
	}
	return string(c)
}

func (c Currency) String() string {
	return string(c)
}
