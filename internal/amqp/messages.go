package amqp

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ledger/internal/core"
)

// TransactionIngestMessage carries a transaction submitted through the
// message broker. Amount is a decimal string ("50.00"); the worker parses
// it into cents before persisting. When RawText is empty and ImagePath is
// set, the worker runs text recognition on the image to fill RawText.
type TransactionIngestMessage struct {
	MessageID string    `json:"message_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Amount    string    `json:"amount"`
	Currency  string    `json:"currency"`
	Category  string    `json:"category"`
	Item      string    `json:"item"`
	RawText   string    `json:"raw_text"`
	ImagePath string    `json:"image_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Timestamp time.Time `json:"timestamp"`
}

// NewTransactionIngestMessage assigns a fresh message ID and stamps the
// publish time. A zero CreatedAt is left for the worker to default.
func NewTransactionIngestMessage(userID, userName, amount, currency, category, item, rawText, imagePath string, createdAt time.Time) *TransactionIngestMessage {
	return &TransactionIngestMessage{
		MessageID: uuid.NewString(),
		UserID:    userID,
		UserName:  userName,
		Amount:    amount,
		Currency:  currency,
		Category:  category,
		Item:      item,
		RawText:   rawText,
		ImagePath: imagePath,
		CreatedAt: createdAt,
		Timestamp: time.Now(),
	}
}

// Validate checks the fields the worker cannot default.
func (m *TransactionIngestMessage) Validate() error {
	if strings.TrimSpace(m.MessageID) == "" {
		return fmt.Errorf("message_id is required")
	}
	if strings.TrimSpace(m.Amount) == "" {
		return fmt.Errorf("amount is required")
	}
	if !core.Currency(m.Currency).Valid() {
		return fmt.Errorf("unsupported currency: %q", m.Currency)
	}
	return nil
}

// ToJSON converts the message to JSON bytes
func (m *TransactionIngestMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionIngestMessageFromJSON creates a message from JSON bytes
func TransactionIngestMessageFromJSON(data []byte) (*TransactionIngestMessage, error) {
	var msg TransactionIngestMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
