package daemon

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/finpulse/internal/model"
)

// Handler returns the chi router with all daemon routes mounted.
func (s *Service) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Get("/report", s.handleReport)
		r.Get("/events", s.handleEvents)
		r.Get("/stream", s.handleStream)
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.m.registry, promhttp.HandlerOpts{}))
	return r
}

type factorPayload struct {
	Name    string  `json:"name"`
	Score   float64 `json:"score"`
	Max     float64 `json:"max"`
	HasData bool    `json:"has_data"`
}

type scorePayload struct {
	Formula string          `json:"formula"`
	Score   int             `json:"score"`
	Label   string          `json:"label"`
	Factors []factorPayload `json:"factors"`
}

type monthPayload struct {
	Month         string          `json:"month"`
	Income        decimal.Decimal `json:"income"`
	Expense       decimal.Decimal `json:"expense"`
	Investment    decimal.Decimal `json:"investment"`
	EndingBalance decimal.Decimal `json:"ending_balance"`
}

type reportPayload struct {
	GeneratedAt     time.Time       `json:"generated_at"`
	Months          []monthPayload  `json:"months"`
	SavingsRate     float64         `json:"savings_rate"`
	ExpenseRate     float64         `json:"expense_rate"`
	InvestmentRate  float64         `json:"investment_rate"`
	BudgetAdherence float64         `json:"budget_adherence"`
	IncomeTrend     float64         `json:"income_trend"`
	ExpenseTrend    float64         `json:"expense_trend"`
	NetWorth        decimal.Decimal `json:"net_worth"`
	Wellness        scorePayload    `json:"wellness"`
	Portfolio       scorePayload    `json:"portfolio"`
	Tips            []string        `json:"tips"`
	Badges          []string        `json:"badges"`
}

func scoreToPayload(h model.HealthScore) scorePayload {
	p := scorePayload{Formula: h.Formula, Score: h.Score, Label: h.Label}
	for _, f := range h.Factors {
		p.Factors = append(p.Factors, factorPayload{Name: f.Name, Score: f.Score, Max: f.Max, HasData: f.HasData})
	}
	return p
}

func reportToPayload(r model.Report) reportPayload {
	p := reportPayload{
		GeneratedAt:     r.GeneratedAt,
		SavingsRate:     r.Rates.SavingsRate,
		ExpenseRate:     r.Rates.ExpenseRate,
		InvestmentRate:  r.Rates.InvestmentRate,
		BudgetAdherence: r.Rates.BudgetAdherence,
		IncomeTrend:     r.Rates.IncomeTrend,
		ExpenseTrend:    r.Rates.ExpenseTrend,
		NetWorth:        r.NetWorth.NetWorth,
		Wellness:        scoreToPayload(r.Wellness),
		Portfolio:       scoreToPayload(r.Portfolio),
		Tips:            r.Feedback.Tips,
		Badges:          make([]string, 0, len(r.Feedback.Badges)),
	}
	for _, b := range r.Buckets {
		p.Months = append(p.Months, monthPayload{
			Month:         b.Key,
			Income:        b.Income,
			Expense:       b.Expense,
			Investment:    b.Investment,
			EndingBalance: b.EndingBalance,
		})
	}
	for _, b := range r.Feedback.Badges {
		p.Badges = append(p.Badges, b.ID)
	}
	if p.Tips == nil {
		p.Tips = []string{}
	}
	return p
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshotStatus())
}

func (s *Service) handleReport(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	ready := s.hasSnapshot
	report := s.report
	s.mu.RUnlock()

	if !ready {
		writeError(w, http.StatusServiceUnavailable, "no report computed yet")
		return
	}
	writeJSON(w, http.StatusOK, reportToPayload(report))
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	writeSSE(w, Event{
		Type:      EventSnapshot,
		Timestamp: s.now(),
		Snapshot:  s.snapshotStatus().Summary,
	})
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}
