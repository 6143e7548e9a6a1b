package workout

import (
	"sort"
	"time"
)

// sessionWindow is how far apart two sets can be and still belong to the
// same training session when grouping history for charts. Long sessions
// chain: each new set extends the window from the sets already grouped.
const sessionWindow = 2 * time.Hour

// TodaySession returns the sets logged since local midnight, in
// chronological order. The boundary is the machine's local calendar day,
// not a rolling 24-hour window.
func TodaySession(history []WorkoutSet) []WorkoutSet {
	return todaySession(history, time.Now())
}

func todaySession(history []WorkoutSet, now time.Time) []WorkoutSet {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	var today []WorkoutSet
	for _, s := range history {
		if !s.LoggedAt.Before(start) && s.LoggedAt.Before(end) {
			today = append(today, s)
		}
	}
	sort.SliceStable(today, func(i, j int) bool {
		return today[i].LoggedAt.Before(today[j].LoggedAt)
	})
	return today
}

// DaySets groups one day's sets by exercise, preserving the order in
// which exercises were first logged.
type DaySets struct {
	order  []string
	byName map[string][]WorkoutSet
}

// TodayByExercise groups the sets logged since local midnight by exercise
// name. Sets keep their history order within each exercise.
func TodayByExercise(history []WorkoutSet) *DaySets {
	return todayByExercise(history, time.Now())
}

func todayByExercise(history []WorkoutSet, now time.Time) *DaySets {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	d := &DaySets{byName: make(map[string][]WorkoutSet)}
	for _, s := range history {
		if s.LoggedAt.Before(start) || !s.LoggedAt.Before(end) {
			continue
		}
		if _, seen := d.byName[s.ExerciseName]; !seen {
			d.order = append(d.order, s.ExerciseName)
		}
		d.byName[s.ExerciseName] = append(d.byName[s.ExerciseName], s)
	}
	return d
}

// Exercises returns the exercise names in first-logged order.
func (d *DaySets) Exercises() []string {
	return d.order
}

// Sets returns the day's sets for one exercise, nil when none.
func (d *DaySets) Sets(exercise string) []WorkoutSet {
	return d.byName[exercise]
}

// SessionGroup is one training session reconstructed from history, keyed
// by the local calendar date its first set fell on.
type SessionGroup struct {
	Date string       `json:"date"`
	Sets []WorkoutSet `json:"sets"`
}

// GroupSessions partitions sets into training sessions. Sets are sorted
// chronologically and greedily assigned to the first existing group
// containing a set within sessionWindow of the candidate; otherwise a new
// group opens. This keeps a long evening session that crosses midnight
// together while splitting distinct days apart.
func GroupSessions(sets []WorkoutSet) []SessionGroup {
	sorted := make([]WorkoutSet, len(sets))
	copy(sorted, sets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LoggedAt.Before(sorted[j].LoggedAt)
	})

	var groups []SessionGroup
	for _, s := range sorted {
		assigned := false
		for i := range groups {
			if withinWindow(groups[i].Sets, s.LoggedAt) {
				groups[i].Sets = append(groups[i].Sets, s)
				assigned = true
				break
			}
		}
		if !assigned {
			groups = append(groups, SessionGroup{
				Date: s.LoggedAt.Local().Format("2006-01-02"),
				Sets: []WorkoutSet{s},
			})
		}
	}
	return groups
}

func withinWindow(sets []WorkoutSet, t time.Time) bool {
	for _, s := range sets {
		d := t.Sub(s.LoggedAt)
		if d < 0 {
			d = -d
		}
		if d <= sessionWindow {
			return true
		}
	}
	return false
}

// BestSet returns the highest-scoring set of a pool, or nil for an empty
// pool. Ties break deterministically: higher weight, then more reps, then
// the later timestamp.
func BestSet(sets []WorkoutSet) *WorkoutSet {
	var best *WorkoutSet
	for i := range sets {
		s := &sets[i]
		if best == nil || outscores(s, best) {
			best = s
		}
	}
	if best == nil {
		return nil
	}
	b := *best
	return &b
}

func outscores(s, best *WorkoutSet) bool {
	ss, bs := s.score(), best.score()
	switch {
	case ss != bs:
		return ss > bs
	case s.WeightKg != best.WeightKg:
		return s.WeightKg > best.WeightKg
	case s.Reps != best.Reps:
		return s.Reps > best.Reps
	default:
		return s.LoggedAt.After(best.LoggedAt)
	}
}

// filterByExercise returns the sets logged under exactly the given
// exercise name. Catalog matching is case-insensitive but logged names
// compare exactly; the persistence layer writes catalog-canonical names.
func filterByExercise(history []WorkoutSet, exercise string) []WorkoutSet {
	var out []WorkoutSet
	for _, s := range history {
		if s.ExerciseName == exercise {
			out = append(out, s)
		}
	}
	return out
}
