package metrics

import (
	"sort"
	"time"

	"github.com/finfree-dev/finfree/internal/model"
)

// Streaks computes reporting streaks from an unordered list of report
// dates. The current streak counts unbroken months walking backward from
// now's month (a missing current month is forgiven, so a March report
// still counts in April); the longest streak scans the whole history and
// is unaffected by gaps near the present.
func Streaks(reportDates []time.Time, now time.Time) model.StreakStats {
	months := uniqueMonths(reportDates)
	if len(months) == 0 {
		return model.StreakStats{}
	}

	return model.StreakStats{
		Current: currentStreak(months, model.TruncateToMonth(now)),
		Longest: longestStreak(months),
	}
}

// uniqueMonths truncates dates to first-of-month and returns them sorted
// ascending with duplicates removed.
func uniqueMonths(dates []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(dates))
	var months []time.Time
	for _, d := range dates {
		m := model.TruncateToMonth(d)
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
	return months
}

func currentStreak(sorted []time.Time, nowMonth time.Time) int {
	has := make(map[time.Time]struct{}, len(sorted))
	for _, m := range sorted {
		has[m] = struct{}{}
	}

	expected := nowMonth
	if _, ok := has[expected]; !ok {
		expected = expected.AddDate(0, -1, 0)
	}

	// First gap stops the walk.
	streak := 0
	for {
		if _, ok := has[expected]; !ok {
			break
		}
		streak++
		expected = expected.AddDate(0, -1, 0)
	}
	return streak
}

func longestStreak(sorted []time.Time) int {
	longest, run := 0, 0
	for i, m := range sorted {
		if i > 0 && sorted[i-1].AddDate(0, 1, 0).Equal(m) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
