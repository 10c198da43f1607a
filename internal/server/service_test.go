package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/finfree-dev/finfree/internal/model"
	"github.com/finfree-dev/finfree/internal/store"
)

func TestDiffSnapshots(t *testing.T) {
	prev := Snapshot{
		TotalIncome:     5000,
		TotalExpenses:   4000,
		NetCashFlow:     1000,
		RichDadNetWorth: 50_000,
	}
	curr := Snapshot{
		TotalIncome:     5500,
		TotalExpenses:   3800,
		NetCashFlow:     1700,
		RichDadNetWorth: 52_500,
	}

	delta := diffSnapshots(prev, curr)
	if delta.TotalIncome != 500 {
		t.Fatalf("TotalIncome delta = %v, want 500", delta.TotalIncome)
	}
	if delta.TotalExpenses != -200 {
		t.Fatalf("TotalExpenses delta = %v, want -200", delta.TotalExpenses)
	}
	if delta.NetCashFlow != 700 {
		t.Fatalf("NetCashFlow delta = %v, want 700", delta.NetCashFlow)
	}
	if delta.RichDadNetWorth != 2500 {
		t.Fatalf("RichDadNetWorth delta = %v, want 2500", delta.RichDadNetWorth)
	}
	if delta.isZero() {
		t.Fatal("delta unexpectedly reported as zero")
	}
}

func TestPublishEventRingBuffer(t *testing.T) {
	s := New(nil, Config{
		Interval:     10 * time.Second,
		EventsBuffer: 2,
	})

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

func testService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "finfree.db"))
	if err != nil {
		t.Fatalf("store.Open() error: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return New(st, Config{Interval: time.Minute}), st
}

func TestHandleSummary(t *testing.T) {
	s, st := testService(t)

	r := model.Report{
		Month: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Data: model.FinancialData{
			Income:   model.Income{Earned1: 5000, Interest: 500, Dividends: 50},
			Expenses: model.Expenses{Groceries: 4000},
		},
	}
	if err := st.SaveReport(r); err != nil {
		t.Fatalf("SaveReport() error: %v", err)
	}

	srv := httptest.NewServer(s.routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/summary")
	if err != nil {
		t.Fatalf("GET /v1/summary error: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var payload struct {
		Month  string `json:"month"`
		Totals struct {
			TotalIncome   float64
			TotalExpenses float64
			NetCashFlow   float64
		} `json:"totals"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decoding summary: %v", err)
	}
	if payload.Month != "2026-03" {
		t.Fatalf("month = %q, want 2026-03", payload.Month)
	}
	if payload.Totals.TotalIncome != 5550 {
		t.Fatalf("total income = %v, want 5550", payload.Totals.TotalIncome)
	}
	if payload.Totals.NetCashFlow != 1550 {
		t.Fatalf("net cash flow = %v, want 1550", payload.Totals.NetCashFlow)
	}
}

func TestHandleSummaryNoReports(t *testing.T) {
	s, _ := testService(t)

	srv := httptest.NewServer(s.routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/summary")
	if err != nil {
		t.Fatalf("GET /v1/summary error: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 with empty store", resp.StatusCode)
	}
}

func TestHandleMilestones(t *testing.T) {
	s, st := testService(t)

	r := model.Report{
		Month: model.TruncateToMonth(time.Now()),
		Data: model.FinancialData{
			Income: model.Income{Earned1: 5000},
			Assets: model.Assets{BankAccounts: 15000},
		},
	}
	if err := st.SaveReport(r); err != nil {
		t.Fatalf("SaveReport() error: %v", err)
	}

	srv := httptest.NewServer(s.routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/milestones")
	if err != nil {
		t.Fatalf("GET /v1/milestones error: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var payload struct {
		Milestones []model.Milestone `json:"milestones"`
		Streaks    model.StreakStats `json:"streaks"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decoding milestones: %v", err)
	}
	if len(payload.Milestones) == 0 {
		t.Fatal("no milestones returned")
	}
	if payload.Streaks.Current != 1 {
		t.Fatalf("current streak = %d, want 1", payload.Streaks.Current)
	}
}

func TestPollOncePublishesDelta(t *testing.T) {
	s, st := testService(t)

	r := model.Report{
		Month: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Data:  model.FinancialData{Income: model.Income{Earned1: 5000}},
	}
	if err := st.SaveReport(r); err != nil {
		t.Fatalf("SaveReport() error: %v", err)
	}

	s.pollOnce()

	r.Data.Income.Earned1 = 6000
	if err := st.SaveReport(r); err != nil {
		t.Fatalf("SaveReport() error: %v", err)
	}

	s.pollOnce()
	s.pollOnce() // no change, no event

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.events) != 2 {
		t.Fatalf("events len = %d, want 2 (snapshot + delta)", len(s.events))
	}
	if s.events[0].Type != "snapshot" {
		t.Fatalf("first event type = %q, want snapshot", s.events[0].Type)
	}
	if s.events[1].Type != "report_delta" {
		t.Fatalf("second event type = %q, want report_delta", s.events[1].Type)
	}
	if s.events[1].Delta.TotalIncome != 1000 {
		t.Fatalf("income delta = %v, want 1000", s.events[1].Delta.TotalIncome)
	}
}
