package workout

import (
	"fmt"
	"testing"
	"time"
)

var testCatalog = NewCatalog([]Exercise{
	{Name: "Bench Press", Powerlifting: true, Tags: []string{"chest"}},
	{Name: "Squat", Powerlifting: true, Tags: []string{"legs"}},
	{Name: "Pull-ups", Bodyweight: true, Tags: []string{"back"}},
	{Name: "Plank", RepType: RepTypeTime},
})

// makeSet builds a logged set with a deterministic ID and a recorded
// estimated 1RM, the way the persistence layer logs them.
func makeSet(exercise string, weightKg float64, reps int, at time.Time) WorkoutSet {
	s := WorkoutSet{
		ID:           fmt.Sprintf("%s-%.1f-%d-%d", exercise, weightKg, reps, at.UnixNano()),
		ExerciseName: exercise,
		WeightKg:     weightKg,
		Reps:         reps,
		LoggedAt:     at,
	}
	if oneRM, ok := testCatalog.EstimateOneRM(weightKg, reps, exercise); ok {
		s.Estimated1RM = &oneRM
	}
	return s
}

// makeSession builds same-exercise sets spaced a few minutes apart.
func makeSession(exercise string, at time.Time, loads ...[2]float64) []WorkoutSet {
	sets := make([]WorkoutSet, 0, len(loads))
	for i, l := range loads {
		sets = append(sets, makeSet(exercise, l[0], int(l[1]), at.Add(time.Duration(i)*5*time.Minute)))
	}
	return sets
}

// TestIsWarmupSetAscendingSession verifies the canonical ramp-up: with
// 80kgx5 as the session best, both lighter preceding sets fall below 90%
// of its score and classify as warm-ups, while the peak itself is working.
func TestIsWarmupSetAscendingSession(t *testing.T) {
	base := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	session := makeSession("Bench Press", base, [2]float64{40, 10}, [2]float64{60, 8}, [2]float64{80, 5})

	if !testCatalog.IsWarmupSet(session[0], nil, session) {
		t.Error("40kg x 10 should be a warm-up")
	}
	if !testCatalog.IsWarmupSet(session[1], nil, session) {
		t.Error("60kg x 8 should be a warm-up")
	}
	if testCatalog.IsWarmupSet(session[2], nil, session) {
		t.Error("80kg x 5 is the session best, not a warm-up")
	}
}

// TestIsWarmupSetBackoffAfterPeak verifies the ordering tie-break: a set
// performed after the session's peak is a deliberate back-off and counts
// as working despite its lower score.
func TestIsWarmupSetBackoffAfterPeak(t *testing.T) {
	base := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	session := makeSession("Bench Press", base,
		[2]float64{40, 10}, [2]float64{60, 8}, [2]float64{80, 5}, [2]float64{50, 8})

	if testCatalog.IsWarmupSet(session[3], nil, session) {
		t.Error("50kg x 8 follows the peak set and must count as working")
	}
	if !testCatalog.IsWarmupSet(session[0], nil, session) {
		t.Error("40kg x 10 before the peak should still be a warm-up")
	}
}

// TestIsWarmupSetTimestampFallback verifies that when a set is not in the
// session list by identity, timestamps decide whether it followed the peak.
func TestIsWarmupSetTimestampFallback(t *testing.T) {
	base := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	session := makeSession("Bench Press", base, [2]float64{60, 8}, [2]float64{80, 5})

	late := makeSet("Bench Press", 50, 8, base.Add(time.Hour))
	late.ID = "" // not findable by identity
	if testCatalog.IsWarmupSet(late, nil, session) {
		t.Error("set logged after the peak (by timestamp) must count as working")
	}

	early := makeSet("Bench Press", 50, 8, base.Add(-time.Hour))
	early.ID = ""
	if !testCatalog.IsWarmupSet(early, nil, session) {
		t.Error("light set logged before the peak should be a warm-up")
	}
}

// TestIsWarmupSetBodyweight verifies the bodyweight rule: once any
// weighted set appears in the session, all unloaded sets were preparatory;
// without one, bodyweight sets are never warm-ups.
func TestIsWarmupSetBodyweight(t *testing.T) {
	base := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	weighted := makeSession("Pull-ups", base, [2]float64{0, 12}, [2]float64{0, 10}, [2]float64{10, 5})

	if !testCatalog.IsWarmupSet(weighted[0], nil, weighted) {
		t.Error("0kg x 12 should be a warm-up once a weighted set exists")
	}
	if !testCatalog.IsWarmupSet(weighted[1], nil, weighted) {
		t.Error("0kg x 10 should be a warm-up once a weighted set exists")
	}
	if testCatalog.IsWarmupSet(weighted[2], nil, weighted) {
		t.Error("the weighted set itself must count as working")
	}

	unweighted := makeSession("Pull-ups", base, [2]float64{0, 12}, [2]float64{0, 10})
	for i, s := range unweighted {
		if testCatalog.IsWarmupSet(s, nil, unweighted) {
			t.Errorf("set %d: bodyweight sets without any weighted set are never warm-ups", i)
		}
	}
}

// TestIsWarmupSetNoReference verifies the conservative default: with
// nothing to compare against, a logged set always counts as working.
func TestIsWarmupSetNoReference(t *testing.T) {
	s := makeSet("Bench Press", 40, 10, time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC))
	if testCatalog.IsWarmupSet(s, nil, nil) {
		t.Error("a set with no reference best must not be a warm-up")
	}
}

// TestIsWarmupSetAllTimeReference verifies classification against a passed
// all-time best when no session context is supplied.
func TestIsWarmupSetAllTimeReference(t *testing.T) {
	base := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	best := makeSet("Bench Press", 100, 5, base.AddDate(0, 0, -7)) // est. 113

	light := makeSet("Bench Press", 60, 5, base) // est. 68, below 90%
	if !testCatalog.IsWarmupSet(light, &best, nil) {
		t.Error("60kg x 5 vs an all-time 100kg x 5 best should be a warm-up")
	}
	heavy := makeSet("Bench Press", 95, 5, base) // est. 107, above 90%
	if testCatalog.IsWarmupSet(heavy, &best, nil) {
		t.Error("95kg x 5 vs a 100kg x 5 best should be working")
	}
}

// TestIsWarmupSetThreshold pins the authoritative 90% threshold. Earlier
// revisions classified with a 70% cutoff and no session-relative
// reference; a set between the two cutoffs documents which rule is live.
func TestIsWarmupSetThreshold(t *testing.T) {
	base := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	best := makeSet("Bench Press", 100, 5, base.AddDate(0, 0, -7)) // est. 113

	// est. 90: ~80% of the best - warm-up at the 90% cutoff, working
	// under the legacy 70% one.
	between := makeSet("Bench Press", 80, 5, base)
	if !testCatalog.IsWarmupSet(between, &best, nil) {
		t.Error("80kg x 5 at ~80% of best must classify as warm-up under the 90% rule")
	}
}

// TestIsWarmupSetUncatalogued verifies graceful degradation: an unknown
// exercise classifies as a generic load-bearing one.
func TestIsWarmupSetUncatalogued(t *testing.T) {
	base := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	session := makeSession("Mystery Lift", base, [2]float64{20, 10}, [2]float64{60, 10})

	if !testCatalog.IsWarmupSet(session[0], nil, session) {
		t.Error("light set of an uncatalogued exercise should classify by score")
	}
}
