package worker

import (
	"context"
	"fmt"
	"time"

	"ledger/internal/amqp"
	"ledger/internal/core"
	"ledger/internal/log"
	"ledger/internal/ocr"
)

// TransactionStore persists transactions built from ingest messages.
type TransactionStore interface {
	CreateTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error)
}

// IngestWorker turns broker messages into stored transactions. The
// recognizer is optional; without one, messages that need text
// recognition keep an empty raw text.
type IngestWorker struct {
	store      TransactionStore
	recognizer ocr.Recognizer
	logger     *log.Logger
}

func NewIngestWorker(store TransactionStore, recognizer ocr.Recognizer, logger *log.Logger) *IngestWorker {
	return &IngestWorker{
		store:      store,
		recognizer: recognizer,
		logger:     logger.WithComponent(log.ComponentWorker),
	}
}

// HandleIngestMessage validates a message, fills raw text from the
// receipt image when needed, and persists the transaction. A recognition
// failure fails the message so the broker redelivers it.
func (w *IngestWorker) HandleIngestMessage(ctx context.Context, msg *amqp.TransactionIngestMessage) error {
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("validate message: %w", err)
	}

	cents, err := core.ParseDecimalToCents(msg.Amount)
	if err != nil {
		return fmt.Errorf("parse amount %q: %w", msg.Amount, err)
	}

	rawText := msg.RawText
	if rawText == "" && msg.ImagePath != "" {
		if w.recognizer == nil {
			w.logger.WarnContext(ctx, "No recognizer configured, storing without raw text",
				log.FieldMessageID, msg.MessageID,
				log.FieldImagePath, msg.ImagePath)
		} else {
			lines, err := w.recognizer.RecognizeText(ctx, msg.ImagePath)
			if err != nil {
				return fmt.Errorf("recognize text from %s: %w", msg.ImagePath, err)
			}
			rawText = ocr.JoinLines(lines)
		}
	}

	createdAt := msg.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	tx := core.Transaction{
		UserID:    msg.UserID,
		UserName:  msg.UserName,
		Amount:    core.Money{Cents: cents},
		Currency:  core.Currency(msg.Currency),
		Category:  msg.Category,
		Item:      msg.Item,
		RawText:   rawText,
		CreatedAt: createdAt,
	}

	stored, err := w.store.CreateTransaction(ctx, tx)
	if err != nil {
		return fmt.Errorf("store transaction: %w", err)
	}

	w.logger.InfoContext(ctx, "Ingested transaction",
		log.FieldMessageID, msg.MessageID,
		log.FieldTransactionID, stored.ID,
		log.FieldAmountCents, stored.Amount.Cents,
		log.FieldCurrency, string(stored.Currency))

	return nil
}
