package dash

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ledger/internal/core"
	apphttp "ledger/internal/http"
	"ledger/internal/report"
	"ledger/internal/snapshot"
)

// monthLayout is the wire format of the month selector, e.g. "2024-05".
const monthLayout = "2006-01"

type (
	sliceDTO struct {
		Label string      `json:"label"`
		Value json.Number `json:"value"`
		Color string      `json:"color"`
	}

	memberDTO struct {
		Name     string      `json:"name"`
		Value    json.Number `json:"value"`
		Fraction float64     `json:"fraction"`
	}

	reportDTO struct {
		Currency   string                       `json:"currency"`
		Symbol     string                       `json:"symbol"`
		Month      string                       `json:"month"`
		Total      json.Number                  `json:"total"`
		Count      int                          `json:"count"`
		Categories []sliceDTO                   `json:"categories"`
		NoData     bool                         `json:"no_data"`
		Members    []memberDTO                  `json:"members"`
		Recent     []apphttp.TransactionPayload `json:"recent"`
		Snapshot   snapshot.Status              `json:"snapshot"`
	}

	ledgerDTO struct {
		Currency     string                       `json:"currency"`
		Month        string                       `json:"month"`
		Count        int                          `json:"count"`
		Transactions []apphttp.TransactionPayload `json:"transactions"`
		Snapshot     snapshot.Status              `json:"snapshot"`
	}
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Status())
}

// handleReport computes the full dashboard view for one (currency, month)
// window. Everything is derived fresh from the current snapshot; a stale or
// missing snapshot is reported in the response, never a request failure.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap, _ := s.store.Current()
	summary, subset := report.Build(snap.Transactions, window)

	resp := reportDTO{
		Currency:   string(window.Currency),
		Symbol:     window.Currency.Symbol(),
		Month:      window.Month.Format(monthLayout),
		Total:      json.Number(summary.Total.Display()),
		Count:      summary.Count,
		Categories: []sliceDTO{},
		Members:    []memberDTO{},
		Recent:     []apphttp.TransactionPayload{},
		Snapshot:   s.store.Status(),
	}

	slices := report.Pie(summary.Categories, window.Currency)
	resp.NoData = len(slices) == 0
	for _, sl := range slices {
		resp.Categories = append(resp.Categories, sliceDTO{
			Label: sl.Label,
			Value: json.Number(sl.Value.Display()),
			Color: sl.Color,
		})
	}

	for _, row := range report.MemberRows(summary.Members, summary.Total) {
		resp.Members = append(resp.Members, memberDTO{
			Name:     row.Name,
			Value:    json.Number(row.Amount.Display()),
			Fraction: row.Fraction,
		})
	}

	for _, t := range report.Recent(subset, report.RecentLimit) {
		resp.Recent = append(resp.Recent, apphttp.PayloadFromTransaction(t))
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleLedger returns the full table view with optional sorting by
// created_at or amount. Sorting happens on a copy; the snapshot itself is
// immutable.
func (s *Server) handleLedger(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := report.SortKey(r.URL.Query().Get("sort"))
	order := report.SortOrder(r.URL.Query().Get("order"))
	switch key {
	case "", report.SortCreatedAt, report.SortAmount:
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown sort key %q", key))
		return
	}
	switch order {
	case "", report.SortAsc, report.SortDesc:
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown sort order %q", order))
		return
	}

	snap, _ := s.store.Current()
	subset := report.Filter(snap.Transactions, window.Currency, window.Month)
	rows := report.Ledger(subset, key, order)

	payloads := apphttp.PayloadsFromTransactions(rows)
	if payloads == nil {
		payloads = []apphttp.TransactionPayload{}
	}
	writeJSON(w, http.StatusOK, ledgerDTO{
		Currency:     string(window.Currency),
		Month:        window.Month.Format(monthLayout),
		Count:        len(rows),
		Transactions: payloads,
		Snapshot:     s.store.Status(),
	})
}

// parseWindow reads the currency and month selectors. Currency defaults to
// CNY, month to the current one.
func parseWindow(r *http.Request) (report.Window, error) {
	q := r.URL.Query()

	currency := core.CNY
	if raw := q.Get("currency"); raw != "" {
		currency = core.Currency(raw)
		if !currency.Valid() {
			return report.Window{}, fmt.Errorf("unknown currency %q", raw)
		}
	}

	month := time.Now()
	if raw := q.Get("month"); raw != "" {
		parsed, err := time.Parse(monthLayout, raw)
		if err != nil {
			return report.Window{}, fmt.Errorf("invalid month %q: expected YYYY-MM", raw)
		}
		month = parsed
	}

	return report.Window{Currency: currency, Month: month}, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
