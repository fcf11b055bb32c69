package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/theirongolddev/finpulse/internal/model"
)

type fakeSource struct {
	txs       []model.Transaction
	gotLimit  int
	assetsErr error
}

func (f *fakeSource) ListTransactions(_ context.Context, limit int) ([]model.Transaction, error) {
	f.gotLimit = limit
	return f.txs, nil
}

func (f *fakeSource) ListAssets(context.Context) ([]model.Asset, error) {
	if f.assetsErr != nil {
		return nil, f.assetsErr
	}
	return []model.Asset{{Name: "cash", Category: model.AssetCash}}, nil
}

func (f *fakeSource) ListLiabilities(context.Context) ([]model.Liability, error) { return nil, nil }

func (f *fakeSource) ListGoals(context.Context) ([]model.SavingsGoal, error) { return nil, nil }

func (f *fakeSource) ListRecurring(context.Context) ([]model.RecurringExpense, error) {
	return nil, nil
}

func TestLoad(t *testing.T) {
	src := &fakeSource{txs: []model.Transaction{tx("5", "pay", testNow)}}
	snap, err := Load(context.Background(), src, 100)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if src.gotLimit != 100 {
		t.Fatalf("limit = %d, want 100", src.gotLimit)
	}
	if len(snap.Transactions) != 1 || len(snap.Assets) != 1 {
		t.Fatalf("snapshot = %+v", snap)
	}
}

func TestLoad_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Load(context.Background(), &fakeSource{assetsErr: boom}, 0)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}
