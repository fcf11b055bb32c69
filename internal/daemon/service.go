// Package daemon serves live finance scores over HTTP, recomputing the
// report on a fixed interval.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/theirongolddev/finpulse/internal/feedback"
	"github.com/theirongolddev/finpulse/internal/model"
	"github.com/theirongolddev/finpulse/internal/pipeline"
	"github.com/theirongolddev/finpulse/internal/score"
)

// DefaultAddr is the listen address used when Config.Addr is empty.
const DefaultAddr = "127.0.0.1:8743"

// BadgeRecorder persists first-unlock times and reports which ids are new.
type BadgeRecorder interface {
	RecordBadges(ctx context.Context, ids []string, at time.Time) ([]string, error)
}

// Config controls the daemon runtime behavior.
type Config struct {
	Addr         string
	Interval     time.Duration
	EventsBuffer int
	Months       int
	Limit        int
	Formula      score.Formula
	Rules        *feedback.Rules // nil means feedback.DefaultRules()
	DBPath       string // informational, shown in status
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	LastPollAt      time.Time `json:"last_poll_at"`
	PollIntervalSec int       `json:"poll_interval_sec"`
	PollCount       int64     `json:"poll_count"`
	DBPath          string    `json:"db_path,omitempty"`
	Months          int       `json:"months"`
	Formula         string    `json:"formula"`
	Summary         Snapshot  `json:"summary"`
	LastError       string    `json:"last_error,omitempty"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
}

// Service provides the daemon runtime and HTTP API.
type Service struct {
	cfg    Config
	src    pipeline.RecordSource
	badges BadgeRecorder
	log    zerolog.Logger
	m      *metrics
	now    func() time.Time

	mu          sync.RWMutex
	startedAt   time.Time
	lastPollAt  time.Time
	pollCount   int64
	lastError   string
	hasSnapshot bool
	snapshot    Snapshot
	report      model.Report
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a service reading from src. badges may be nil, in which case
// unlocks are detected only against the previous poll.
func New(cfg Config, src pipeline.RecordSource, badges BadgeRecorder, log zerolog.Logger) *Service {
	if cfg.Interval < 2*time.Second {
		cfg.Interval = 30 * time.Second
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Months < 1 {
		cfg.Months = pipeline.DefaultMonths
	}
	if cfg.Formula == "" {
		cfg.Formula = score.FormulaWellness
	}
	if cfg.Rules == nil {
		rules := feedback.DefaultRules()
		cfg.Rules = &rules
	}

	return &Service{
		cfg:       cfg,
		src:       src,
		badges:    badges,
		log:       log,
		m:         newMetrics(),
		now:       time.Now,
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
	}
}

// Run starts HTTP endpoints and polling until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.log.Info().Str("addr", s.cfg.Addr).Dur("interval", s.cfg.Interval).Msg("daemon listening")

	// Seed the first snapshot so status is useful immediately.
	s.pollOnce(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.pollOnce(ctx)
		case err := <-errCh:
			return fmt.Errorf("daemon http server: %w", err)
		}
	}
}

func (s *Service) pollOnce(ctx context.Context) {
	s.m.polls.Inc()
	start := s.now()

	snap, err := pipeline.Load(ctx, s.src, s.cfg.Limit)
	if err != nil {
		s.m.pollErrors.Inc()
		s.mu.Lock()
		s.lastError = err.Error()
		s.lastPollAt = start
		s.pollCount++
		s.mu.Unlock()
		s.log.Error().Err(err).Msg("poll failed")
		return
	}

	report := pipeline.Build(snap, pipeline.Options{
		Now:     start,
		Months:  s.cfg.Months,
		Formula: s.cfg.Formula,
		Rules:   s.cfg.Rules,
	})
	s.m.observe(report)
	curr := snapshotFromReport(report)

	var persisted []string
	if s.badges != nil && len(curr.Badges) > 0 {
		persisted, err = s.badges.RecordBadges(ctx, curr.Badges, start)
		if err != nil {
			s.log.Warn().Err(err).Msg("recording badge unlocks")
		}
	}

	var (
		ev      Event
		publish bool
	)

	s.mu.Lock()
	prev := s.snapshot
	prevExists := s.hasSnapshot

	s.hasSnapshot = true
	s.snapshot = curr
	s.report = report
	s.lastPollAt = start
	s.pollCount++
	s.lastError = ""

	if !prevExists {
		s.nextEventID++
		ev = Event{
			ID:        s.nextEventID,
			Type:      EventSnapshot,
			Timestamp: start,
			Snapshot:  curr,
			Delta:     Delta{NewBadges: persisted},
		}
		publish = true
	} else {
		delta := diffSnapshots(prev, curr)
		if len(persisted) > 0 {
			delta.NewBadges = mergeIDs(delta.NewBadges, persisted)
		}
		if !delta.isZero() {
			s.nextEventID++
			ev = Event{
				ID:        s.nextEventID,
				Type:      EventUpdate,
				Timestamp: start,
				Snapshot:  curr,
				Delta:     delta,
			}
			publish = true
		}
	}
	s.mu.Unlock()

	for _, id := range persisted {
		s.log.Info().Str("badge", id).Msg("badge unlocked")
	}
	s.log.Debug().
		Int("wellness", curr.WellnessScore).
		Int("portfolio", curr.PortfolioScore).
		Dur("took", s.now().Sub(start)).
		Msg("poll complete")

	if publish {
		s.publishEvent(ev)
	}
}

func mergeIDs(a, b []string) []string {
	seen := make(map[string]struct{}, len(a))
	for _, id := range a {
		seen[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := seen[id]; !ok {
			a = append(a, id)
			seen[id] = struct{}{}
		}
	}
	return a
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		LastPollAt:      s.lastPollAt,
		PollIntervalSec: int(s.cfg.Interval.Seconds()),
		PollCount:       s.pollCount,
		DBPath:          s.cfg.DBPath,
		Months:          s.cfg.Months,
		Formula:         string(s.cfg.Formula),
		Summary:         s.snapshot,
		LastError:       s.lastError,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
