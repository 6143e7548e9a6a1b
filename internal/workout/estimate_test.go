package workout

import (
	"math"
	"testing"
)

// TestEstimateOneRMBrzycki verifies the Brzycki formula across its valid
// rep range: round(weight * 36 / (37 - reps)).
func TestEstimateOneRMBrzycki(t *testing.T) {
	for reps := 2; reps <= 12; reps++ {
		want := int(math.Round(100 * 36 / float64(37-reps)))
		if got := EstimateOneRM(100, reps); got != want {
			t.Errorf("EstimateOneRM(100, %d) = %d, want %d", reps, got, want)
		}
	}
	// Spot checks against hand-computed values.
	if got := EstimateOneRM(80, 5); got != 90 {
		t.Errorf("EstimateOneRM(80, 5) = %d, want 90", got)
	}
	if got := EstimateOneRM(100, 10); got != 133 {
		t.Errorf("EstimateOneRM(100, 10) = %d, want 133", got)
	}
}

// TestEstimateOneRMSingle verifies a single rep needs no formula: the
// lifted weight is the max.
func TestEstimateOneRMSingle(t *testing.T) {
	if got := EstimateOneRM(142, 1); got != 142 {
		t.Errorf("EstimateOneRM(142, 1) = %d, want 142", got)
	}
}

// TestEstimateOneRMHighReps verifies the linear extrapolation beyond 12
// reps, where Brzycki's denominator misbehaves.
func TestEstimateOneRMHighReps(t *testing.T) {
	tests := []struct {
		weight float64
		reps   int
		want   int
	}{
		{60, 15, 90},  // 60 * 1.5
		{60, 20, 100}, // 60 * (1 + 20/30) = 99.99.. -> 100
		{40, 30, 80},  // 40 * 2
	}
	for _, tt := range tests {
		if got := EstimateOneRM(tt.weight, tt.reps); got != tt.want {
			t.Errorf("EstimateOneRM(%v, %d) = %d, want %d", tt.weight, tt.reps, got, tt.want)
		}
	}
}

// TestEstimateOneRMGated verifies the catalog gate: no 1RM for exercises
// catalogued as non-powerlifting, permissive computation otherwise.
func TestEstimateOneRMGated(t *testing.T) {
	c := NewCatalog([]Exercise{
		{Name: "Bench Press", Powerlifting: true},
		{Name: "Plank", RepType: RepTypeTime},
		{Name: "Pull-ups", Bodyweight: true},
	})

	if _, ok := c.EstimateOneRM(100, 5, "Plank"); ok {
		t.Error("expected no 1RM for non-powerlifting exercise")
	}
	if _, ok := c.EstimateOneRM(100, 5, "pull-ups"); ok {
		t.Error("expected no 1RM for bodyweight exercise (case-insensitive lookup)")
	}
	if got, ok := c.EstimateOneRM(100, 5, "Bench Press"); !ok || got != 113 {
		t.Errorf("EstimateOneRM(100, 5, Bench Press) = %d, %v; want 113, true", got, ok)
	}
	// Unknown and empty names compute permissively.
	if _, ok := c.EstimateOneRM(100, 5, "Mystery Lift"); !ok {
		t.Error("expected permissive 1RM for uncatalogued exercise")
	}
	if _, ok := c.EstimateOneRM(100, 5, ""); !ok {
		t.Error("expected permissive 1RM with no exercise name")
	}
}
