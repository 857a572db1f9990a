package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ledger/internal/log"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Family Ledger API is running"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListTransactions returns the full authoritative snapshot, newest
// first. Consumers treat it as a whole-set replacement, so there is no
// paging or diffing here.
func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := s.store.ListTransactions(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "list transactions failed",
			log.FieldOperation, log.OpList, log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "list transactions failed")
		return
	}

	// empty set encodes as [] rather than null
	payloads := PayloadsFromTransactions(txs)
	if payloads == nil {
		payloads = []TransactionPayload{}
	}
	writeJSON(w, http.StatusOK, payloads)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var p TransactionPayload
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.UseNumber()
	if err := dec.Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("decode transaction: %v", err))
		return
	}

	tx, err := p.Transaction()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now().UTC()
	}

	created, err := s.store.CreateTransaction(r.Context(), tx)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "create transaction failed",
			log.FieldOperation, log.OpCreate, log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "create transaction failed")
		return
	}

	s.logger.InfoContext(r.Context(), "transaction created",
		log.FieldOperation, log.OpCreate,
		log.FieldTransactionID, created.ID,
		log.FieldAmountCents, created.Amount.Cents,
		log.FieldCurrency, string(created.Currency))

	writeJSON(w, http.StatusCreated, PayloadFromTransaction(created))
}

// handleReset clears every stored transaction. The two-step human
// confirmation lives in the calling UI; the confirm parameter only stops the
// endpoint from being hit by accident.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "all" {
		writeError(w, http.StatusBadRequest, "reset requires confirm=all")
		return
	}

	n, err := s.store.ResetTransactions(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "reset transactions failed",
			log.FieldOperation, log.OpReset, log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "reset transactions failed")
		return
	}

	s.logger.InfoContext(r.Context(), "transactions reset",
		log.FieldOperation, log.OpReset, log.FieldCount, n)

	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Deleted %d transactions", n),
		"deleted": n,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
