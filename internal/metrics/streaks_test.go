package metrics

import (
	"testing"
	"time"
)

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestStreaks_ConsecutiveMonths(t *testing.T) {
	now := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	dates := []time.Time{
		month(2024, time.January),
		month(2024, time.February),
		month(2024, time.March),
	}

	s := Streaks(dates, now)
	if s.Current != 3 {
		t.Fatalf("Current = %d, want 3", s.Current)
	}
	if s.Longest != 3 {
		t.Fatalf("Longest = %d, want 3", s.Longest)
	}
}

func TestStreaks_GapStopsCurrentButNotLongest(t *testing.T) {
	now := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	dates := []time.Time{
		month(2023, time.October),
		month(2023, time.November),
		month(2023, time.December),
		month(2024, time.March), // gap: no Jan/Feb
	}

	s := Streaks(dates, now)
	if s.Current != 1 {
		t.Fatalf("Current = %d, want 1 (gap before March)", s.Current)
	}
	if s.Longest != 3 {
		t.Fatalf("Longest = %d, want 3 (Oct-Dec run)", s.Longest)
	}
}

func TestStreaks_CurrentMonthCounts(t *testing.T) {
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	dates := []time.Time{
		month(2024, time.February),
		month(2024, time.March),
	}

	if s := Streaks(dates, now); s.Current != 2 {
		t.Fatalf("Current = %d, want 2", s.Current)
	}
}

func TestStreaks_StaleHistory(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	dates := []time.Time{
		month(2024, time.January),
		month(2024, time.February),
	}

	s := Streaks(dates, now)
	if s.Current != 0 {
		t.Fatalf("Current = %d for stale history, want 0", s.Current)
	}
	if s.Longest != 2 {
		t.Fatalf("Longest = %d, want 2", s.Longest)
	}
}

func TestStreaks_DuplicatesAndMidMonthDates(t *testing.T) {
	now := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	dates := []time.Time{
		time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC), // same month twice
		time.Date(2024, 2, 14, 12, 0, 0, 0, time.UTC),
	}

	s := Streaks(dates, now)
	if s.Current != 2 {
		t.Fatalf("Current = %d, want 2", s.Current)
	}
	if s.Longest != 2 {
		t.Fatalf("Longest = %d, want 2", s.Longest)
	}
}

func TestStreaks_Empty(t *testing.T) {
	s := Streaks(nil, time.Now())
	if s.Current != 0 || s.Longest != 0 {
		t.Fatalf("empty history produced %+v, want zeros", s)
	}
}
