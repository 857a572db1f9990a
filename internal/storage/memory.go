package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"ledger/internal/core"
)

// MemoryRepository keeps transactions in memory. It implements the same
// operations as SQLiteRepository for dev setups and tests.
type MemoryRepository struct {
	mu     sync.Mutex
	nextID int64
	items  []core.Transaction
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) Close() error { return nil }

func (r *MemoryRepository) CreateTransaction(_ context.Context, t core.Transaction) (core.Transaction, error) {
	if err := t.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("validate transaction: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = r.nextID
	r.nextID++
	r.items = append(r.items, t)
	return t, nil
}

func (r *MemoryRepository) ListTransactions(_ context.Context) ([]core.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]core.Transaction, len(r.items))
	copy(out, r.items)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepository) ResetTransactions(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.items))
	r.items = nil
	return n, nil
}
