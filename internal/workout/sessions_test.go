package workout

import (
	"testing"
	"time"
)

func TestTodaySession(t *testing.T) {
	now := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	history := []WorkoutSet{
		makeSet("Bench Press", 80, 5, now.Add(-2*time.Hour)),
		makeSet("Squat", 100, 5, now.Add(-26*time.Hour)), // yesterday
		makeSet("Bench Press", 60, 8, now.Add(-4*time.Hour)),
		makeSet("Squat", 90, 5, now.Add(5*time.Hour)), // tomorrow, past midnight
	}

	today := todaySession(history, now)
	if len(today) != 2 {
		t.Fatalf("got %d sets today, want 2", len(today))
	}
	if today[0].WeightKg != 60 || today[1].WeightKg != 80 {
		t.Errorf("today's sets not in chronological order: %v then %v", today[0].WeightKg, today[1].WeightKg)
	}
}

func TestTodaySessionBoundaries(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	midnight := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	history := []WorkoutSet{
		makeSet("Squat", 100, 5, midnight),                      // inclusive start
		makeSet("Squat", 90, 5, midnight.AddDate(0, 0, 1)),      // exclusive end
		makeSet("Squat", 80, 5, midnight.Add(-time.Nanosecond)), // yesterday
	}

	today := todaySession(history, now)
	if len(today) != 1 || today[0].WeightKg != 100 {
		t.Fatalf("got %v, want only the midnight set", today)
	}
}

func TestTodayByExerciseOrder(t *testing.T) {
	now := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	history := []WorkoutSet{
		makeSet("Squat", 100, 5, now.Add(-3*time.Hour)),
		makeSet("Bench Press", 60, 8, now.Add(-2*time.Hour)),
		makeSet("Squat", 110, 3, now.Add(-1*time.Hour)),
	}

	today := todayByExercise(history, now)
	order := today.Exercises()
	if len(order) != 2 || order[0] != "Squat" || order[1] != "Bench Press" {
		t.Errorf("exercise order = %v, want [Squat Bench Press]", order)
	}
	if got := len(today.Sets("Squat")); got != 2 {
		t.Errorf("got %d squat sets, want 2", got)
	}
	if got := today.Sets("Deadlift"); got != nil {
		t.Errorf("untouched exercise returned %v, want nil", got)
	}
}

func TestGroupSessions(t *testing.T) {
	day1 := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 12, 18, 0, 0, 0, time.UTC)
	sets := []WorkoutSet{
		// Deliberately unsorted input.
		makeSet("Squat", 100, 5, day2),
		makeSet("Squat", 80, 5, day1),
		makeSet("Squat", 90, 5, day1.Add(30*time.Minute)),
		makeSet("Squat", 105, 3, day2.Add(time.Hour)),
	}

	groups := GroupSessions(sets)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Date != "2025-03-10" || len(groups[0].Sets) != 2 {
		t.Errorf("first group = %s with %d sets, want 2025-03-10 with 2", groups[0].Date, len(groups[0].Sets))
	}
	if groups[1].Date != "2025-03-12" || len(groups[1].Sets) != 2 {
		t.Errorf("second group = %s with %d sets, want 2025-03-12 with 2", groups[1].Date, len(groups[1].Sets))
	}
}

// TestGroupSessionsChaining verifies a long session chains: consecutive
// sets each within two hours of the previous one stay in a single group
// even when the first and last are further apart than the window.
func TestGroupSessionsChaining(t *testing.T) {
	base := time.Date(2025, 3, 10, 22, 0, 0, 0, time.UTC)
	sets := []WorkoutSet{
		makeSet("Squat", 80, 5, base),
		makeSet("Squat", 90, 5, base.Add(90*time.Minute)),
		makeSet("Squat", 100, 3, base.Add(3*time.Hour)), // past midnight, within window of set 2
	}

	groups := GroupSessions(sets)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1 chained session", len(groups))
	}
	if groups[0].Date != "2025-03-10" {
		t.Errorf("session date = %s, want keyed by its first set's day", groups[0].Date)
	}
}

func TestBestSet(t *testing.T) {
	base := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)

	if got := BestSet(nil); got != nil {
		t.Fatalf("BestSet(nil) = %v, want nil", got)
	}

	// 60x8 out-tonnes 80x5 (480 vs 400) but the recorded 1RMs rank
	// the heavier set first (90 vs 74).
	sets := makeSession("Bench Press", base, [2]float64{40, 10}, [2]float64{60, 8}, [2]float64{80, 5})
	best := BestSet(sets)
	if best == nil || best.WeightKg != 80 {
		t.Fatalf("best = %+v, want the 80kg x 5 set", best)
	}

	// Returned set is a copy, not an alias into the pool.
	best.WeightKg = 999
	if sets[2].WeightKg != 80 {
		t.Error("BestSet must return a copy of the winning set")
	}
}

// TestBestSetTieBreaks pins the deterministic ordering for equal scores:
// heavier wins, then more reps, then the later timestamp.
func TestBestSetTieBreaks(t *testing.T) {
	base := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)

	// Equal tonnage (400), no recorded 1RMs: heavier set wins.
	a := WorkoutSet{ExerciseName: "Row", WeightKg: 80, Reps: 5, LoggedAt: base}
	b := WorkoutSet{ExerciseName: "Row", WeightKg: 50, Reps: 8, LoggedAt: base.Add(time.Minute)}
	if best := BestSet([]WorkoutSet{b, a}); best.WeightKg != 80 {
		t.Errorf("equal scores: best weight = %v, want 80", best.WeightKg)
	}

	// Fully identical loads: the later set wins.
	c := a
	c.LoggedAt = base.Add(time.Hour)
	best := BestSet([]WorkoutSet{a, c})
	if !best.LoggedAt.Equal(c.LoggedAt) {
		t.Errorf("identical loads: best logged at %v, want the later %v", best.LoggedAt, c.LoggedAt)
	}
}
