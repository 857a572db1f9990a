package storage

import (
	"context"
	"testing"
	"time"

	"ledger/internal/core"
)

func memTx(cents int64, at time.Time) core.Transaction {
	return core.Transaction{
		Amount:    core.Money{Cents: cents},
		Currency:  core.CNY,
		CreatedAt: at,
	}
}

func TestMemoryRepositoryCreateAssignsIDs(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	first, err := repo.CreateTransaction(ctx, memTx(100, at))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := repo.CreateTransaction(ctx, memTx(200, at))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("IDs = %d, %d, want 1, 2", first.ID, second.ID)
	}
}

func TestMemoryRepositoryRejectsInvalid(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.CreateTransaction(context.Background(), core.Transaction{
		Amount:   core.Money{Cents: 100},
		Currency: "EUR",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestMemoryRepositoryListNewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	older := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	newer := older.AddDate(0, 0, 3)
	if _, err := repo.CreateTransaction(ctx, memTx(100, older)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.CreateTransaction(ctx, memTx(200, newer)); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.ListTransactions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if !got[0].CreatedAt.Equal(newer) {
		t.Errorf("first item created at %v, want %v", got[0].CreatedAt, newer)
	}
}

func TestMemoryRepositoryReset(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		if _, err := repo.CreateTransaction(ctx, memTx(100, at)); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	n, err := repo.ResetTransactions(ctx)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if n != 3 {
		t.Errorf("deleted = %d, want 3", n)
	}

	got, err := repo.ListTransactions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len after reset = %d, want 0", len(got))
	}
}
