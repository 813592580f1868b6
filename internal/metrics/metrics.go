// Package metrics computes the derived numbers the views show: key-result
// and objective progress, the weighted portfolio number, habit streaks, and
// weekly completion rates. Everything here is pure; entity snapshots in,
// integers out. Percentages stay in [0, 100] and every division is guarded,
// so callers never see NaN or a panic.
package metrics

import (
	"math"
	"sort"
	"time"

	"github.com/marek/mastermind-api/internal/models"
)

const dateLayout = "2006-01-02"

// KeyResultProgress is round(current/target*100) clamped to [0, 100].
// A zero target reads as 0%, not a division error.
func KeyResultProgress(current, target float64) int {
	if target == 0 {
		return 0
	}
	return clamp(int(math.Round(current/target*100)), 0, 100)
}

// ObjectiveProgress is the unweighted mean of the key results' progress,
// rounded; no key results means 0.
func ObjectiveProgress(keyResults []models.KeyResult) int {
	if len(keyResults) == 0 {
		return 0
	}
	total := 0
	for _, kr := range keyResults {
		total += KeyResultProgress(kr.CurrentValue, kr.TargetValue)
	}
	return int(math.Round(float64(total) / float64(len(keyResults))))
}

// OverallProgress weights each objective's progress by its weight field,
// normalized by the total weight in scope. Zero total weight reads as 0.
func OverallProgress(objectives []models.Objective, keyResults []models.KeyResult) int {
	totalWeight := 0
	weighted := 0.0
	for _, o := range objectives {
		progress := ObjectiveProgress(keyResultsOf(o.ID, keyResults))
		weighted += float64(progress * o.Weight)
		totalWeight += o.Weight
	}
	if totalWeight == 0 {
		return 0
	}
	return int(math.Round(weighted / float64(totalWeight)))
}

func keyResultsOf(objectiveID string, keyResults []models.KeyResult) []models.KeyResult {
	matched := make([]models.KeyResult, 0, len(keyResults))
	for _, kr := range keyResults {
		if kr.ObjectiveID == objectiveID {
			matched = append(matched, kr)
		}
	}
	return matched
}

// Streak counts consecutive completed days scanning backward from today.
// Entries are visited most-recent-first with a cursor starting at today:
// a gap of more than one day stops the scan, a completed entry advances the
// cursor to its day, and an incomplete entry stops the scan unless it is
// today's — a day not yet logged does not reset the streak.
func Streak(entries []models.HabitEntry, today time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	sorted := make([]models.HabitEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date > sorted[j].Date })

	streak := 0
	cursor := dateOnly(today)
	for _, entry := range sorted {
		day, err := time.Parse(dateLayout, entry.Date)
		if err != nil {
			continue
		}
		diff := daysBetween(day, cursor)
		switch {
		case diff > 1:
			return streak
		case entry.Completed:
			streak++
			cursor = day
		case diff == 0:
			// today, not completed; keep scanning
		default:
			return streak
		}
	}
	return streak
}

// WeeklyCompletionRate is completed entries over eligible habit-day slots in
// the 7-day window starting at weekStart. Days after today are not eligible;
// zero eligible slots reads as 0.
func WeeklyCompletionRate(habitCount int, entries []models.HabitEntry, weekStart, today time.Time) int {
	start := dateOnly(weekStart)
	end := dateOnly(today)

	eligibleDays := 0
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		if day.After(end) {
			break
		}
		eligibleDays++
	}

	eligible := eligibleDays * habitCount
	if eligible == 0 {
		return 0
	}

	startStr := start.Format(dateLayout)
	lastStr := start.AddDate(0, 0, 6).Format(dateLayout)
	todayStr := end.Format(dateLayout)
	completed := 0
	for _, e := range entries {
		if e.Completed && e.Date >= startStr && e.Date <= lastStr && e.Date <= todayStr {
			completed++
		}
	}

	return clamp(int(math.Round(float64(completed)/float64(eligible)*100)), 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// dateOnly drops the time of day, mapping t to UTC midnight of its calendar
// date so day arithmetic is immune to DST.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}
