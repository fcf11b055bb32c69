package pipeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/theirongolddev/finpulse/internal/model"
)

// RecordSource is the read side of the record store.
type RecordSource interface {
	ListTransactions(ctx context.Context, limit int) ([]model.Transaction, error)
	ListAssets(ctx context.Context) ([]model.Asset, error)
	ListLiabilities(ctx context.Context) ([]model.Liability, error)
	ListGoals(ctx context.Context) ([]model.SavingsGoal, error)
	ListRecurring(ctx context.Context) ([]model.RecurringExpense, error)
}

// Load fetches a complete snapshot, reading the five record lists in
// parallel. limit caps the transactions to the most recent N; zero or less
// loads all of them. The first error wins and the snapshot is discarded.
func Load(ctx context.Context, src RecordSource, limit int) (model.Snapshot, error) {
	var (
		snap     model.Snapshot
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	fail := func(what string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = fmt.Errorf("loading %s: %w", what, err)
		}
	}

	wg.Add(5)
	go func() {
		defer wg.Done()
		v, err := src.ListTransactions(ctx, limit)
		if err != nil {
			fail("transactions", err)
			return
		}
		snap.Transactions = v
	}()
	go func() {
		defer wg.Done()
		v, err := src.ListAssets(ctx)
		if err != nil {
			fail("assets", err)
			return
		}
		snap.Assets = v
	}()
	go func() {
		defer wg.Done()
		v, err := src.ListLiabilities(ctx)
		if err != nil {
			fail("liabilities", err)
			return
		}
		snap.Liabilities = v
	}()
	go func() {
		defer wg.Done()
		v, err := src.ListGoals(ctx)
		if err != nil {
			fail("goals", err)
			return
		}
		snap.Goals = v
	}()
	go func() {
		defer wg.Done()
		v, err := src.ListRecurring(ctx)
		if err != nil {
			fail("recurring expenses", err)
			return
		}
		snap.Recurring = v
	}()

	wg.Wait()

	if firstErr != nil {
		return model.Snapshot{}, firstErr
	}
	return snap, nil
}
