// Package server provides a local HTTP service exposing the current
// report's metrics for widgets and dashboards.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/finfree-dev/finfree/internal/metrics"
	"github.com/finfree-dev/finfree/internal/model"
	"github.com/finfree-dev/finfree/internal/store"
)

// Config controls the service runtime behavior.
type Config struct {
	Interval     time.Duration
	Addr         string
	EventsBuffer int
}

// Snapshot is a compact financial state for status/event payloads.
type Snapshot struct {
	At              time.Time `json:"at"`
	Month           string    `json:"month"`
	TotalIncome     float64   `json:"total_income"`
	PassiveIncome   float64   `json:"passive_income"`
	TotalExpenses   float64   `json:"total_expenses"`
	NetCashFlow     float64   `json:"net_cash_flow"`
	BankerNetWorth  float64   `json:"banker_net_worth"`
	RichDadNetWorth float64   `json:"rich_dad_net_worth"`
}

// Delta captures snapshot deltas between polls.
type Delta struct {
	TotalIncome     float64 `json:"total_income"`
	TotalExpenses   float64 `json:"total_expenses"`
	NetCashFlow     float64 `json:"net_cash_flow"`
	RichDadNetWorth float64 `json:"rich_dad_net_worth"`
}

func (d Delta) isZero() bool {
	return d.TotalIncome == 0 &&
		d.TotalExpenses == 0 &&
		d.NetCashFlow == 0 &&
		d.RichDadNetWorth == 0
}

// Event is emitted whenever the tracked report changes.
type Event struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Snapshot  Snapshot  `json:"snapshot"`
	Delta     Delta     `json:"delta"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	LastPollAt      time.Time `json:"last_poll_at"`
	PollIntervalSec int       `json:"poll_interval_sec"`
	PollCount       int64     `json:"poll_count"`
	Summary         Snapshot  `json:"summary"`
	LastError       string    `json:"last_error,omitempty"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
}

// Service watches the report store and serves its metrics over HTTP.
type Service struct {
	cfg   Config
	store *store.Store

	mu          sync.RWMutex
	startedAt   time.Time
	lastPollAt  time.Time
	pollCount   int64
	lastError   string
	hasSnapshot bool
	snapshot    Snapshot
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a new service backed by the given store.
func New(st *store.Store, cfg Config) *Service {
	if cfg.Interval < 2*time.Second {
		cfg.Interval = 30 * time.Second
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8787"
	}

	return &Service{
		cfg:       cfg,
		store:     st,
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
	}
}

// Run starts HTTP endpoints and polling until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Seed initial snapshot so status is useful immediately.
	s.pollOnce()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.pollOnce()
		case err := <-errCh:
			return fmt.Errorf("finfree server: %w", err)
		}
	}
}

func (s *Service) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/summary", s.handleSummary)
	mux.HandleFunc("/v1/ratios", s.handleRatios)
	mux.HandleFunc("/v1/milestones", s.handleMilestones)
	mux.HandleFunc("/v1/events", s.handleEvents)
	mux.HandleFunc("/v1/stream", s.handleStream)
	return mux
}

func (s *Service) pollOnce() {
	reports, err := s.store.LatestReports(1)
	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.lastPollAt = time.Now()
		s.pollCount++
		s.mu.Unlock()
		log.Printf("finfree server poll error: %v", err)
		return
	}

	now := time.Now()
	var snap Snapshot
	if len(reports) > 0 {
		snap = snapshotFromReport(reports[0], now)
	} else {
		snap = Snapshot{At: now}
	}

	var (
		ev      Event
		publish bool
	)

	s.mu.Lock()
	prev := s.snapshot
	prevExists := s.hasSnapshot

	s.hasSnapshot = true
	s.snapshot = snap
	s.lastPollAt = now
	s.pollCount++
	s.lastError = ""

	if !prevExists {
		s.nextEventID++
		ev = Event{
			ID:        s.nextEventID,
			Type:      "snapshot",
			Timestamp: now,
			Snapshot:  snap,
			Delta:     Delta{},
		}
		publish = true
	} else {
		delta := diffSnapshots(prev, snap)
		if !delta.isZero() {
			s.nextEventID++
			ev = Event{
				ID:        s.nextEventID,
				Type:      "report_delta",
				Timestamp: now,
				Snapshot:  snap,
				Delta:     delta,
			}
			publish = true
		}
	}
	s.mu.Unlock()

	if publish {
		s.publishEvent(ev)
	}
}

func snapshotFromReport(r model.Report, at time.Time) Snapshot {
	t := metrics.Aggregate(r.Data)
	return Snapshot{
		At:              at,
		Month:           model.MonthKey(r.Month),
		TotalIncome:     t.TotalIncome,
		PassiveIncome:   t.Passive + t.Portfolio,
		TotalExpenses:   t.TotalExpenses,
		NetCashFlow:     t.NetCashFlow,
		BankerNetWorth:  t.BankerNetWorth,
		RichDadNetWorth: t.RichDadNetWorth,
	}
}

func diffSnapshots(prev, curr Snapshot) Delta {
	return Delta{
		TotalIncome:     curr.TotalIncome - prev.TotalIncome,
		TotalExpenses:   curr.TotalExpenses - prev.TotalExpenses,
		NetCashFlow:     curr.NetCashFlow - prev.NetCashFlow,
		RichDadNetWorth: curr.RichDadNetWorth - prev.RichDadNetWorth,
	}
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
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
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		LastPollAt:      s.lastPollAt,
		PollIntervalSec: int(s.cfg.Interval.Seconds()),
		PollCount:       s.pollCount,
		Summary:         s.snapshot,
		LastError:       s.lastError,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
}

// latestReport loads the newest report, or nil when none exist.
func (s *Service) latestReport() (*model.Report, error) {
	reports, err := s.store.LatestReports(1)
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, nil
	}
	return &reports[0], nil
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.snapshotStatus())
}

func (s *Service) handleSummary(w http.ResponseWriter, _ *http.Request) {
	r, err := s.latestReport()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if r == nil {
		http.Error(w, "no reports", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		Month  string         `json:"month"`
		Totals metrics.Totals `json:"totals"`
	}{model.MonthKey(r.Month), metrics.Aggregate(r.Data)})
}

func (s *Service) handleRatios(w http.ResponseWriter, _ *http.Request) {
	r, err := s.latestReport()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if r == nil {
		http.Error(w, "no reports", http.StatusNotFound)
		return
	}

	ratios := metrics.ComputeRatios(metrics.Aggregate(r.Data))
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		Month  string            `json:"month"`
		Ratios metrics.Ratios    `json:"ratios"`
		Rows   []metrics.RatioRow `json:"rows"`
	}{model.MonthKey(r.Month), ratios, ratios.Rows()})
}

func (s *Service) handleMilestones(w http.ResponseWriter, _ *http.Request) {
	r, err := s.latestReport()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if r == nil {
		http.Error(w, "no reports", http.StatusNotFound)
		return
	}

	dates, err := s.store.ReportDates()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	t := metrics.Aggregate(r.Data)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		Month      string            `json:"month"`
		Milestones []model.Milestone `json:"milestones"`
		Streaks    model.StreakStats `json:"streaks"`
	}{
		model.MonthKey(r.Month),
		metrics.Milestones(r.Data, t.TotalIncome*12),
		metrics.Streaks(dates, time.Now()),
	})
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	// Send current snapshot immediately.
	current := Event{
		Type:      "snapshot",
		Timestamp: time.Now(),
		Snapshot:  s.snapshotStatus().Summary,
	}
	writeSSE(w, current)
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
