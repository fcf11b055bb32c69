package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finpulse/internal/model"
)

var fixedNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

type fakeSource struct {
	mu  sync.Mutex
	txs []model.Transaction
	err error
}

func (f *fakeSource) ListTransactions(context.Context, int) ([]model.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]model.Transaction(nil), f.txs...), nil
}

func (f *fakeSource) ListAssets(context.Context) ([]model.Asset, error) { return nil, nil }

func (f *fakeSource) ListLiabilities(context.Context) ([]model.Liability, error) { return nil, nil }

func (f *fakeSource) ListGoals(context.Context) ([]model.SavingsGoal, error) { return nil, nil }

func (f *fakeSource) ListRecurring(context.Context) ([]model.RecurringExpense, error) {
	return nil, nil
}

func (f *fakeSource) add(tx model.Transaction) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.txs = append(f.txs, tx)
}

type fakeBadges struct {
	seen map[string]bool
}

func (f *fakeBadges) RecordBadges(_ context.Context, ids []string, _ time.Time) ([]string, error) {
	var fresh []string
	for _, id := range ids {
		if !f.seen[id] {
			f.seen[id] = true
			fresh = append(fresh, id)
		}
	}
	return fresh, nil
}

func newTestService(src *fakeSource, badges BadgeRecorder) *Service {
	s := New(Config{Interval: 10 * time.Second, EventsBuffer: 10}, src, badges, zerolog.Nop())
	s.now = func() time.Time { return fixedNow }
	return s
}

func salary(amount int64, at time.Time) model.Transaction {
	return model.Transaction{
		ID:        "tx-" + at.Format(time.RFC3339),
		Amount:    decimal.NewFromInt(amount),
		Type:      model.TypeDeposit,
		Timestamp: at,
	}
}

func TestDiffSnapshots(t *testing.T) {
	prev := Snapshot{
		WellnessScore:  40,
		PortfolioScore: 20,
		NetWorth:       decimal.NewFromInt(1000),
		Transactions:   10,
		Badges:         []string{"first_deposit"},
	}
	curr := Snapshot{
		WellnessScore:  46,
		PortfolioScore: 18,
		NetWorth:       decimal.RequireFromString("1250.50"),
		Transactions:   12,
		Badges:         []string{"first_deposit", "goal_setter"},
	}

	delta := diffSnapshots(prev, curr)
	if delta.WellnessScore != 6 {
		t.Fatalf("WellnessScore delta = %d, want 6", delta.WellnessScore)
	}
	if delta.PortfolioScore != -2 {
		t.Fatalf("PortfolioScore delta = %d, want -2", delta.PortfolioScore)
	}
	if !delta.NetWorth.Equal(decimal.RequireFromString("250.50")) {
		t.Fatalf("NetWorth delta = %s, want 250.50", delta.NetWorth)
	}
	if len(delta.NewBadges) != 1 || delta.NewBadges[0] != "goal_setter" {
		t.Fatalf("NewBadges = %v, want [goal_setter]", delta.NewBadges)
	}
	if delta.isZero() {
		t.Fatal("delta unexpectedly reported as zero")
	}
	if !diffSnapshots(curr, curr).isZero() {
		t.Fatal("identical snapshots should diff to zero")
	}
}

func TestPublishEventRingBuffer(t *testing.T) {
	s := New(Config{EventsBuffer: 2}, &fakeSource{}, nil, zerolog.Nop())

	s.publishEvent(Event{ID: 1})
	s.publishEvent(Event{ID: 2})
	s.publishEvent(Event{ID: 3})

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.events) != 2 {
		t.Fatalf("events len = %d, want 2", len(s.events))
	}
	if s.events[0].ID != 2 || s.events[1].ID != 3 {
		t.Fatalf("events ring contains IDs [%d, %d], want [2, 3]", s.events[0].ID, s.events[1].ID)
	}
}

func TestPollPublishesSnapshotThenUpdates(t *testing.T) {
	src := &fakeSource{txs: []model.Transaction{salary(3000, fixedNow.AddDate(0, 0, -2))}}
	badges := &fakeBadges{seen: map[string]bool{}}
	s := newTestService(src, badges)
	ctx := context.Background()

	s.pollOnce(ctx)
	s.pollOnce(ctx) // unchanged data, no event

	src.add(salary(500, fixedNow.AddDate(0, 0, -1)))
	s.pollOnce(ctx)

	s.mu.RLock()
	events := append([]Event(nil), s.events...)
	polls := s.pollCount
	s.mu.RUnlock()

	if polls != 3 {
		t.Fatalf("pollCount = %d, want 3", polls)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].Type != EventSnapshot {
		t.Errorf("first event type = %q, want %q", events[0].Type, EventSnapshot)
	}
	if len(events[0].Delta.NewBadges) == 0 {
		t.Error("first poll should report the deposit badge as newly unlocked")
	}
	if events[1].Type != EventUpdate || events[1].Delta.Transactions != 1 {
		t.Errorf("second event = %+v, want update with 1 new transaction", events[1])
	}
}

func TestPollErrorRecordedInStatus(t *testing.T) {
	src := &fakeSource{err: errors.New("disk gone")}
	s := newTestService(src, nil)
	s.pollOnce(context.Background())

	st := s.snapshotStatus()
	if !strings.Contains(st.LastError, "disk gone") {
		t.Fatalf("LastError = %q, want wrapped load error", st.LastError)
	}
	if st.PollCount != 1 {
		t.Fatalf("PollCount = %d, want 1", st.PollCount)
	}
}

func TestReportEndpoint(t *testing.T) {
	src := &fakeSource{txs: []model.Transaction{
		salary(3000, fixedNow.AddDate(0, 0, -3)),
		{ID: "rent", Amount: decimal.NewFromInt(-1000), Type: model.TypeExpense, Timestamp: fixedNow.AddDate(0, 0, -1)},
	}}
	s := newTestService(src, nil)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/report")
	if err != nil {
		t.Fatal(err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("report before first poll: status = %d, want 503", resp.StatusCode)
	}

	s.pollOnce(context.Background())

	resp, err = http.Get(srv.URL + "/v1/report")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var got reportPayload
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decoding report: %v", err)
	}
	if got.Wellness.Formula != "wellness" || got.Portfolio.Formula != "portfolio" {
		t.Errorf("formulas = %q/%q, want wellness/portfolio", got.Wellness.Formula, got.Portfolio.Formula)
	}
	if len(got.Wellness.Factors) != 5 {
		t.Errorf("wellness factors = %d, want 5", len(got.Wellness.Factors))
	}
	if len(got.Months) != 6 {
		t.Errorf("months = %d, want 6", len(got.Months))
	}
	if got.SavingsRate < 66 || got.SavingsRate > 67 {
		t.Errorf("savings rate = %v, want ~66.7", got.SavingsRate)
	}
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	s := newTestService(&fakeSource{txs: []model.Transaction{salary(100, fixedNow)}}, nil)
	s.pollOnce(context.Background())
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz status = %d", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = resp.Body.Close() }()
	body, _ := io.ReadAll(resp.Body)
	for _, name := range []string{
		"finpulse_wellness_score",
		"finpulse_portfolio_score",
		"finpulse_net_worth",
		"finpulse_savings_rate_percent 100",
		"finpulse_daemon_polls_total 1",
	} {
		if !strings.Contains(string(body), name) {
			t.Errorf("/metrics missing %q", name)
		}
	}
}

func TestStatusEndpoint(t *testing.T) {
	s := newTestService(&fakeSource{}, nil)
	s.pollOnce(context.Background())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/status", nil))

	var st Status
	if err := json.NewDecoder(rec.Body).Decode(&st); err != nil {
		t.Fatal(err)
	}
	if st.Formula != "wellness" || st.Months != 6 {
		t.Errorf("status = %+v, want wellness formula and 6 months", st)
	}
}
