package http

import (
	"encoding/json"
	"fmt"
	"time"

	"ledger/internal/core"
)

// TransactionPayload is the wire shape of a transaction. Amounts travel as
// 2-decimal JSON numbers and are parsed through the decimal-string path, so
// cents never go through float arithmetic.
type TransactionPayload struct {
	ID        int64       `json:"id,omitempty"`
	UserID    string      `json:"user_id,omitempty"`
	UserName  string      `json:"user_name,omitempty"`
	Amount    json.Number `json:"amount"`
	Currency  string      `json:"currency"`
	Category  string      `json:"category,omitempty"`
	Item      string      `json:"item,omitempty"`
	RawText   string      `json:"raw_text,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// PayloadFromTransaction converts a domain transaction to its wire shape.
func PayloadFromTransaction(t core.Transaction) TransactionPayload {
	return TransactionPayload{
		ID:        t.ID,
		UserID:    t.UserID,
		UserName:  t.UserName,
		Amount:    json.Number(t.Amount.Display()),
		Currency:  string(t.Currency),
		Category:  t.Category,
		Item:      t.Item,
		RawText:   t.RawText,
		CreatedAt: t.CreatedAt,
	}
}

// PayloadsFromTransactions converts a transaction list, keeping order.
func PayloadsFromTransactions(txs []core.Transaction) []TransactionPayload {
	out := make([]TransactionPayload, 0, len(txs))
	for _, t := range txs {
		out = append(out, PayloadFromTransaction(t))
	}
	return out
}

// Transaction parses the payload into a domain transaction. A zero
// created_at stays zero; the create handler fills in the receive time.
func (p TransactionPayload) Transaction() (core.Transaction, error) {
	cents, err := core.ParseDecimalToCents(p.Amount.String())
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse amount %q: %w", p.Amount.String(), err)
	}

	currency := core.Currency(p.Currency)
	if !currency.Valid() {
		return core.Transaction{}, fmt.Errorf("currency %q: %w", p.Currency, core.ErrInvalidCurrency)
	}

	return core.Transaction{
		ID:        p.ID,
		UserID:    p.UserID,
		UserName:  p.UserName,
		Amount:    core.Money{Cents: cents},
		Currency:  currency,
		Category:  p.Category,
		Item:      p.Item,
		RawText:   p.RawText,
		CreatedAt: p.CreatedAt,
	}, nil
}
