package workout

import "sort"

// ProgressionPoint is the best estimated 1RM recorded on one calendar day.
type ProgressionPoint struct {
	Date         string `json:"date"`
	Estimated1RM int    `json:"estimated_1rm"`
}

// Progression returns the daily-max estimated 1RM series for an exercise,
// ascending by date. Sets without a recorded estimate are skipped.
func Progression(history []WorkoutSet, exercise string) []ProgressionPoint {
	byDate := make(map[string]int)
	for _, s := range filterByExercise(history, exercise) {
		if s.Estimated1RM == nil || *s.Estimated1RM == 0 {
			continue
		}
		key := s.LoggedAt.Local().Format("2006-01-02")
		if *s.Estimated1RM > byDate[key] {
			byDate[key] = *s.Estimated1RM
		}
	}

	points := make([]ProgressionPoint, 0, len(byDate))
	for date, oneRM := range byDate {
		points = append(points, ProgressionPoint{Date: date, Estimated1RM: oneRM})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

// ProgressionSummary condenses a progression series for display.
type ProgressionSummary struct {
	Current       int     `json:"current"`
	Max           int     `json:"max"`
	Change        int     `json:"change"`
	PercentChange float64 `json:"percent_change"`
}

// SummarizeProgression compares the latest point against the previous one
// and reports the all-time max. Nil for an empty series.
func SummarizeProgression(points []ProgressionPoint) *ProgressionSummary {
	if len(points) == 0 {
		return nil
	}

	current := points[len(points)-1].Estimated1RM
	previous := current
	if len(points) > 1 {
		previous = points[len(points)-2].Estimated1RM
	}
	max := 0
	for _, p := range points {
		if p.Estimated1RM > max {
			max = p.Estimated1RM
		}
	}

	change := current - previous
	pct := 0.0
	if previous > 0 {
		pct = float64(change) / float64(previous) * 100
	}
	return &ProgressionSummary{Current: current, Max: max, Change: change, PercentChange: pct}
}

// PersonalRecord returns the best working set ever logged for an exercise.
// Each reconstructed session filters its own warm-ups first, so an opening
// 60kg single never beats a later 100kg triple on tonnage alone.
func (c *Catalog) PersonalRecord(history []WorkoutSet, exercise string) *WorkoutSet {
	var working []WorkoutSet
	for _, group := range GroupSessions(filterByExercise(history, exercise)) {
		for _, s := range group.Sets {
			if !c.IsWarmupSet(s, nil, group.Sets) {
				working = append(working, s)
			}
		}
	}
	return BestSet(working)
}

// ExerciseDayStats summarizes one exercise's sets within a single day.
type ExerciseDayStats struct {
	ExerciseName  string       `json:"exercise_name"`
	Sets          []WorkoutSet `json:"sets"`
	TotalVolumeKg float64      `json:"total_volume_kg"`
	TopWeightKg   float64      `json:"top_weight_kg"`
}

// DayHistory is one calendar day of logged work, grouped per exercise.
type DayHistory struct {
	Date      string             `json:"date"`
	TotalSets int                `json:"total_sets"`
	Exercises []ExerciseDayStats `json:"exercises"`
}

// HistoryByDay groups the full history by local calendar day, most recent
// day first. Within a day, exercises keep first-logged order.
func HistoryByDay(history []WorkoutSet) []DayHistory {
	type dayAcc struct {
		order  []string
		byName map[string][]WorkoutSet
		total  int
	}

	days := make(map[string]*dayAcc)
	var dates []string
	for _, s := range history {
		key := s.LoggedAt.Local().Format("2006-01-02")
		acc, ok := days[key]
		if !ok {
			acc = &dayAcc{byName: make(map[string][]WorkoutSet)}
			days[key] = acc
			dates = append(dates, key)
		}
		if _, seen := acc.byName[s.ExerciseName]; !seen {
			acc.order = append(acc.order, s.ExerciseName)
		}
		acc.byName[s.ExerciseName] = append(acc.byName[s.ExerciseName], s)
		acc.total++
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	out := make([]DayHistory, 0, len(dates))
	for _, date := range dates {
		acc := days[date]
		day := DayHistory{Date: date, TotalSets: acc.total}
		for _, name := range acc.order {
			sets := acc.byName[name]
			stats := ExerciseDayStats{ExerciseName: name, Sets: sets}
			for _, s := range sets {
				stats.TotalVolumeKg += s.WeightKg * float64(s.Reps)
				if s.WeightKg > stats.TopWeightKg {
					stats.TopWeightKg = s.WeightKg
				}
			}
			day.Exercises = append(day.Exercises, stats)
		}
		out = append(out, day)
	}
	return out
}
