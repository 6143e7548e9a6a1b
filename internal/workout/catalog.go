package workout

import "strings"

// Catalog is a case-insensitive name-keyed lookup over the static
// exercise list, built once at startup. It is a name-keyed view, never an
// owner: logged sets reference exercises by name only.
type Catalog struct {
	entries map[string]Exercise
	order   []string
}

// NewCatalog builds a Catalog from a list of exercises. Later entries with
// a duplicate name (case-insensitive) overwrite earlier ones; the boundary
// loader rejects duplicates before they get here.
func NewCatalog(exercises []Exercise) *Catalog {
	c := &Catalog{entries: make(map[string]Exercise, len(exercises))}
	for _, ex := range exercises {
		key := strings.ToLower(ex.Name)
		if _, seen := c.entries[key]; !seen {
			c.order = append(c.order, key)
		}
		c.entries[key] = ex
	}
	return c
}

// Lookup finds the catalog entry matching name case-insensitively. A nil
// catalog or a missing entry reports found = false; callers treat that as
// a generic non-bodyweight, non-powerlifting exercise.
func (c *Catalog) Lookup(name string) (Exercise, bool) {
	if c == nil {
		return Exercise{}, false
	}
	ex, ok := c.entries[strings.ToLower(name)]
	return ex, ok
}

// Exercises returns all entries in catalog order.
func (c *Catalog) Exercises() []Exercise {
	if c == nil {
		return nil
	}
	out := make([]Exercise, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.entries[key])
	}
	return out
}

// PlannedWarmup is one concrete warm-up set with percentages resolved to
// kilograms.
type PlannedWarmup struct {
	WeightKg float64 `json:"weight_kg"`
	Reps     int     `json:"reps"`
}

// WarmupPlan resolves an exercise's warm-up protocol against a target
// working load. Percentage steps are computed from targetKg; when no
// target is known (targetKg <= 0) they fall back to the first fixed-weight
// step in the protocol. Returns nil when the exercise has no protocol.
func (c *Catalog) WarmupPlan(exerciseName string, targetKg float64) []PlannedWarmup {
	ex, ok := c.Lookup(exerciseName)
	if !ok || len(ex.Warmup) == 0 {
		return nil
	}

	reference := targetKg
	if reference <= 0 {
		for _, step := range ex.Warmup {
			if step.Unit != WeightUnitPercent {
				reference = step.Weight
				break
			}
		}
	}

	plan := make([]PlannedWarmup, 0, len(ex.Warmup))
	for _, step := range ex.Warmup {
		weight := step.Weight
		if step.Unit == WeightUnitPercent {
			weight = roundHalf(reference * step.Weight / 100)
		}
		plan = append(plan, PlannedWarmup{WeightKg: weight, Reps: step.Reps})
	}
	return plan
}
