package snapshot

import (
	"context"
	"time"

	"ledger/internal/log"
)

// Poller is the scheduled refresh job: fetch the full set, swap it in, or
// record the classified failure while the previous snapshot stays visible.
type Poller struct {
	client *Client
	store  *Store
	logger *log.Logger
}

func NewPoller(client *Client, store *Store, logger *log.Logger) *Poller {
	return &Poller{
		client: client,
		store:  store,
		logger: logger.WithComponent(log.ComponentSnapshot),
	}
}

// Name implements the scheduler job interface.
func (p *Poller) Name() string { return "snapshot-refresh" }

// Run performs one poll. The client enforces the request timeout, so no
// extra deadline is needed here.
func (p *Poller) Run() error {
	now := time.Now()
	txs, err := p.client.Fetch(context.Background())
	if err != nil {
		p.store.RecordFailure(err, now)
		p.logger.Warn("snapshot refresh failed",
			log.FieldOperation, log.OpFetch,
			log.FieldErrorKind, string(Classify(err)),
			log.FieldError, err)
		return err
	}

	p.store.Replace(txs, now)
	p.logger.Debug("snapshot refreshed",
		log.FieldOperation, log.OpFetch,
		log.FieldCount, len(txs))
	return nil
}
