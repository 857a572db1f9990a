// Package snapshot implements the refresh loop side of the transaction
// supply: a polling HTTP client, an atomically swapped last-known-good
// store, and the scheduled job tying them together.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"ledger/internal/core"
	apphttp "ledger/internal/http"
)

// ErrorKind classifies a failed fetch for user-facing messaging.
type ErrorKind string

const (
	KindTimeout ErrorKind = "timeout"
	KindServer  ErrorKind = "server"
	KindUnknown ErrorKind = "unknown"
)

// FetchError wraps a transport or decode failure with its classification.
type FetchError struct {
	Kind   ErrorKind
	Status int // HTTP status for KindServer, 0 otherwise
	Err    error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindTimeout:
		return fmt.Sprintf("fetch timed out: %v", e.Err)
	case KindServer:
		return fmt.Sprintf("server error (status %d): %v", e.Status, e.Err)
	default:
		return fmt.Sprintf("fetch failed: %v", e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// Classify returns the error kind of a fetch failure, KindUnknown for
// anything that is not a FetchError.
func Classify(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}

// Client fetches the full transaction snapshot from the supply API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client with a bounded per-request timeout; a request
// that exceeds it fails as KindTimeout instead of hanging.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves the authoritative transaction set. Any failure is
// returned as a *FetchError; no partial result is ever returned alongside
// an error.
func (c *Client) Fetch(ctx context.Context) ([]core.Transaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/transactions/", nil)
	if err != nil {
		return nil, &FetchError{Kind: KindUnknown, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &FetchError{Kind: KindTimeout, Err: err}
		}
		return nil, &FetchError{Kind: KindUnknown, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			Kind:   KindServer,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var payloads []apphttp.TransactionPayload
	if err := dec.Decode(&payloads); err != nil {
		return nil, &FetchError{Kind: KindUnknown, Err: fmt.Errorf("decode snapshot: %w", err)}
	}

	txs := make([]core.Transaction, 0, len(payloads))
	for _, p := range payloads {
		t, err := p.Transaction()
		if err != nil {
			// a malformed record poisons the whole snapshot; the previous
			// good one stays in place
			return nil, &FetchError{Kind: KindUnknown, Err: fmt.Errorf("record %d: %w", p.ID, err)}
		}
		txs = append(txs, t)
	}
	return txs, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
