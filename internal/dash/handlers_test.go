package dash

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger/internal/core"
	"ledger/internal/log"
	"ledger/internal/snapshot"
)

func testServer(t *testing.T) (*Server, *snapshot.Store) {
	t.Helper()
	store := snapshot.NewStore()
	logger := log.New(log.Config{Handler: slog.NewTextHandler(io.Discard, nil)})
	return NewServer(":0", store, logger), store
}

func seedMay(store *snapshot.Store) {
	store.Replace([]core.Transaction{
		{
			ID:        1,
			Amount:    core.Money{Cents: 5000},
			Currency:  core.CNY,
			Item:      "星巴克咖啡",
			UserName:  "Alice",
			CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:        2,
			Amount:    core.Money{Cents: 3000},
			Currency:  core.CNY,
			Item:      "地铁",
			UserName:  "Bob",
			CreatedAt: time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:        3,
			Amount:    core.Money{Cents: 9900},
			Currency:  core.HKD,
			Item:      "午饭",
			UserName:  "Alice",
			CreatedAt: time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC),
		},
	}, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestReportMayCNY(t *testing.T) {
	srv, store := testServer(t)
	seedMay(store)

	rec := get(t, srv, "/api/report?currency=CNY&month=2024-05")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp reportDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "CNY", resp.Currency)
	assert.Equal(t, "¥", resp.Symbol)
	assert.Equal(t, "80.00", resp.Total.String())
	assert.Equal(t, 2, resp.Count)
	assert.False(t, resp.NoData)

	require.Len(t, resp.Categories, 2)
	assert.Equal(t, "餐饮", resp.Categories[0].Label)
	assert.Equal(t, "50.00", resp.Categories[0].Value.String())
	assert.Equal(t, "交通", resp.Categories[1].Label)

	require.Len(t, resp.Members, 2)
	assert.Equal(t, "Alice", resp.Members[0].Name)
	assert.InDelta(t, 0.625, resp.Members[0].Fraction, 1e-9)
	assert.Equal(t, "Bob", resp.Members[1].Name)

	require.Len(t, resp.Recent, 2)
	assert.Equal(t, int64(2), resp.Recent[0].ID) // newest first

	assert.True(t, resp.Snapshot.HasData)
	assert.Equal(t, 3, resp.Snapshot.Count)
}

func TestReportEmptyWindowIsNoData(t *testing.T) {
	srv, store := testServer(t)
	seedMay(store)

	rec := get(t, srv, "/api/report?currency=USDT&month=2024-05")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp reportDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "0.00", resp.Total.String())
	assert.Equal(t, 0, resp.Count)
	assert.True(t, resp.NoData)
	assert.Empty(t, resp.Categories)
	assert.Empty(t, resp.Members)
	assert.Empty(t, resp.Recent)
}

func TestReportBeforeFirstSnapshot(t *testing.T) {
	srv, _ := testServer(t)

	rec := get(t, srv, "/api/report?currency=CNY&month=2024-05")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp reportDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.NoData)
	assert.False(t, resp.Snapshot.HasData)
}

func TestReportRejectsBadSelectors(t *testing.T) {
	srv, store := testServer(t)
	seedMay(store)

	assert.Equal(t, http.StatusBadRequest, get(t, srv, "/api/report?currency=EUR").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, srv, "/api/report?month=May-2024").Code)
}

func TestLedgerSorting(t *testing.T) {
	srv, store := testServer(t)
	seedMay(store)

	rec := get(t, srv, "/api/report/ledger?currency=CNY&month=2024-05&sort=amount&order=asc")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ledgerDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "30.00", resp.Transactions[0].Amount.String())
	assert.Equal(t, "50.00", resp.Transactions[1].Amount.String())
}

func TestLedgerRejectsUnknownSort(t *testing.T) {
	srv, store := testServer(t)
	seedMay(store)

	assert.Equal(t, http.StatusBadRequest, get(t, srv, "/api/report/ledger?sort=member").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, srv, "/api/report/ledger?sort=amount&order=sideways").Code)
}

func TestStatusSurfacesLastError(t *testing.T) {
	srv, store := testServer(t)
	seedMay(store)
	store.RecordFailure(&snapshot.FetchError{Kind: snapshot.KindTimeout, Err: errors.New("deadline exceeded")}, time.Now())

	rec := get(t, srv, "/api/status")
	require.Equal(t, http.StatusOK, rec.Code)

	var st snapshot.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.True(t, st.HasData)
	assert.Equal(t, snapshot.KindTimeout, st.LastErrorKind)
}
