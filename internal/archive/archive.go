// Package archive implements the monthly close-out: stamping a report as
// final and seeding the next month from it.
package archive

import (
	"fmt"
	"time"

	"github.com/finfree-dev/finfree/internal/model"
	"github.com/finfree-dev/finfree/internal/store"
)

// CloseMonth archives the report for the given month key and seeds the
// following month with a copy of its figures and sources, if that month
// does not already exist. Returns the next month's key.
func CloseMonth(s *store.Store, key string, now time.Time) (string, error) {
	r, err := s.GetReport(key)
	if err != nil {
		return "", err
	}
	if r == nil {
		return "", fmt.Errorf("archive: no report for month %s", key)
	}
	if !r.ArchivedAt.IsZero() {
		return "", fmt.Errorf("archive: month %s is already archived", key)
	}

	if err := s.MarkArchived(key, now); err != nil {
		return "", err
	}

	nextMonth := r.Month.AddDate(0, 1, 0)
	nextKey := model.MonthKey(nextMonth)

	existing, err := s.GetReport(nextKey)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return nextKey, nil
	}

	// Balances and recurring figures rarely change wholesale between
	// months; the copy gives the user a starting point to edit.
	next := model.Report{
		Month:     nextMonth,
		Data:      r.Data,
		Sources:   append([]model.DataSource(nil), r.Sources...),
		UpdatedAt: now,
	}
	if err := s.SaveReport(next); err != nil {
		return "", err
	}
	return nextKey, nil
}

// OpenMonths returns the keys of all reports that have not been archived,
// ascending.
func OpenMonths(s *store.Store) ([]string, error) {
	months, err := s.ListReportMonths()
	if err != nil {
		return nil, err
	}
	var open []string
	for _, m := range months {
		r, err := s.GetReport(m)
		if err != nil {
			return nil, err
		}
		if r != nil && r.ArchivedAt.IsZero() {
			open = append(open, m)
		}
	}
	return open, nil
}
