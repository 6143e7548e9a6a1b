package workout

import (
	"reflect"
	"testing"
)

func TestCatalogLookup(t *testing.T) {
	c := NewCatalog([]Exercise{
		{Name: "Bench Press", Powerlifting: true},
		{Name: "Pull-ups", Bodyweight: true},
	})

	for _, name := range []string{"Bench Press", "bench press", "BENCH PRESS"} {
		ex, ok := c.Lookup(name)
		if !ok || ex.Name != "Bench Press" {
			t.Errorf("Lookup(%q) = %+v, %v; want the bench entry", name, ex, ok)
		}
	}
	if _, ok := c.Lookup("Deadlift"); ok {
		t.Error("Lookup of a missing entry must report not found")
	}

	var nilCatalog *Catalog
	if _, ok := nilCatalog.Lookup("Bench Press"); ok {
		t.Error("nil catalog Lookup must report not found")
	}
	if got := nilCatalog.Exercises(); got != nil {
		t.Errorf("nil catalog Exercises = %v, want nil", got)
	}
}

func TestCatalogExercisesOrder(t *testing.T) {
	c := NewCatalog([]Exercise{
		{Name: "Squat"},
		{Name: "Bench Press"},
		{Name: "Deadlift"},
	})

	var names []string
	for _, ex := range c.Exercises() {
		names = append(names, ex.Name)
	}
	if !reflect.DeepEqual(names, []string{"Squat", "Bench Press", "Deadlift"}) {
		t.Errorf("exercise order = %v, want declaration order", names)
	}
}

func TestWarmupPlan(t *testing.T) {
	c := NewCatalog([]Exercise{
		{
			Name: "Squat",
			Warmup: []WarmupStep{
				{Weight: 20, Reps: 10},
				{Weight: 50, Unit: WeightUnitPercent, Reps: 5},
				{Weight: 75, Unit: WeightUnitPercent, Reps: 3},
			},
		},
		{Name: "Plank"},
	})

	got := c.WarmupPlan("squat", 140)
	want := []PlannedWarmup{
		{WeightKg: 20, Reps: 10},
		{WeightKg: 70, Reps: 5},
		{WeightKg: 105, Reps: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WarmupPlan(squat, 140) = %+v, want %+v", got, want)
	}

	// Percentages resolve to the nearest half kilogram.
	got = c.WarmupPlan("Squat", 141)
	if got[1].WeightKg != 70.5 {
		t.Errorf("50%% of 141 = %v, want 70.5", got[1].WeightKg)
	}

	// Without a known target, percentages fall back to the first
	// fixed-weight step as the reference.
	got = c.WarmupPlan("Squat", 0)
	if got[1].WeightKg != 10 || got[2].WeightKg != 15 {
		t.Errorf("no-target plan = %+v, want percentages of the 20kg bar", got)
	}

	if got := c.WarmupPlan("Plank", 0); got != nil {
		t.Errorf("WarmupPlan without a protocol = %v, want nil", got)
	}
	if got := c.WarmupPlan("Deadlift", 100); got != nil {
		t.Errorf("WarmupPlan for an uncatalogued exercise = %v, want nil", got)
	}
}
