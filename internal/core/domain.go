package core

import (
	"errors"
	"strings"
	"time"
)

// UnknownMember is the attribution used for transactions without a user name.
const UnknownMember = "Unknown"

type (
	Money struct {
		Cents int64
	}

	// Transaction is a single expense record as supplied by the ingest
	// pipeline. It is immutable once received: the engine only reads it and
	// derives display values (category, buckets) fresh on every query.
	Transaction struct {
		ID        int64
		UserID    string
		UserName  string
		Amount    Money
		Currency  Currency
		Category  string
		Item      string
		RawText   string
		CreatedAt time.Time
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidCurrency  = errors.New("invalid currency")
	ErrMissingCreatedAt = errors.New("missing created at timestamp")
)

// Member returns the attribution name, treating an absent or blank user name
// as the literal "Unknown" member.
func (t Transaction) Member() string {
	name := strings.TrimSpace(t.UserName)
	if name == "" {
		return UnknownMember
	}
	return name
}

func (t Transaction) Validate() error {
	if t.Amount.Cents < 0 {
		return ErrInvalidAmount
	}
	if !t.Currency.Valid() {
		return ErrInvalidCurrency
	}
	if t.CreatedAt.IsZero() {
		return ErrMissingCreatedAt
	}
	return nil
}

func (m Money) Validate() error {
	if m.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}
