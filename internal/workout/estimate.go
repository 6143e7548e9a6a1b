package workout

import "math"

// maxBrzyckiReps is the upper bound for the Brzycki formula. Its
// denominator (37 - reps) approaches zero as reps grow, so beyond 12 reps
// the estimate is replaced with a linear extrapolation.
const maxBrzyckiReps = 12

// EstimateOneRM returns the estimated one-rep max in whole kilograms for a
// weight/reps pair. A single rep needs no formula. From 2 to 12 reps the
// Brzycki formula applies; above that, linear extrapolation.
// Estimates are reported at whole-kilogram granularity throughout.
func EstimateOneRM(weightKg float64, reps int) int {
	switch {
	case reps <= 1:
		return int(math.Round(weightKg))
	case reps > maxBrzyckiReps:
		return int(math.Round(weightKg * (1 + float64(reps)/30)))
	default:
		return int(math.Round(weightKg * 36 / float64(37-reps)))
	}
}

// roundHalf rounds to the nearest 0.5 kg, the smallest practical plate
// increment.
func roundHalf(kg float64) float64 {
	return math.Round(kg*2) / 2
}

// EstimateOneRM is the catalog-gated variant: when the named exercise is
// catalogued and not flagged powerlifting, there is no meaningful 1RM and
// ok is false. Unknown or empty names compute permissively.
func (c *Catalog) EstimateOneRM(weightKg float64, reps int, exerciseName string) (int, bool) {
	if ex, found := c.Lookup(exerciseName); found && !ex.Powerlifting {
		return 0, false
	}
	return EstimateOneRM(weightKg, reps), true
}
