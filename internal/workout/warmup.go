package workout

// warmupThreshold is the fraction of the reference best below which a
// load-bearing set counts as a warm-up. An earlier revision used 0.70
// without session-relative recomputation; 0.90 with it is authoritative.
const warmupThreshold = 0.90

// IsWarmupSet decides whether candidate was a warm-up rather than a true
// working set. best is the all-time best set for the exercise (may be
// nil). session, when supplied, is the same-exercise sets of the session
// the candidate belongs to, in logged order; the reference best is then
// recomputed from within that session instead of using best.
//
// With no reference at all the candidate is never a warm-up: insufficient
// data never discards a logged set.
func (c *Catalog) IsWarmupSet(candidate WorkoutSet, best *WorkoutSet, session []WorkoutSet) bool {
	ex, _ := c.Lookup(candidate.ExerciseName)

	ref := best
	if len(session) > 0 {
		ref = sessionBest(session, ex.Bodyweight)
	}
	if ref == nil {
		return false
	}

	if len(session) > 0 {
		// A set performed after the session's peak is a deliberate
		// back-off, not a warm-up, whatever its load. Position in the
		// session list decides; timestamps break ties when either set
		// is not in the list by identity.
		refIdx := indexByID(session, ref.ID)
		candIdx := indexByID(session, candidate.ID)
		if refIdx >= 0 && candIdx >= 0 {
			if candIdx > refIdx {
				return false
			}
		} else if candidate.LoggedAt.After(ref.LoggedAt) {
			return false
		}

		// A weighted set anywhere in the session proves the unloaded
		// sets of a bodyweight exercise were preparatory.
		if ex.Bodyweight && candidate.WeightKg == 0 {
			for _, s := range session {
				if s.WeightKg > 0 {
					return true
				}
			}
		}
	}

	// Bodyweight work carries no further warm-up signal.
	if ex.Bodyweight {
		return false
	}

	return candidate.score() < ref.score()*warmupThreshold
}

// sessionBest recomputes the reference best from within a session. For a
// bodyweight exercise, unloaded sets compare by reps; everything else
// compares by score.
func sessionBest(session []WorkoutSet, bodyweight bool) *WorkoutSet {
	var best *WorkoutSet
	for i := range session {
		s := &session[i]
		if best == nil {
			best = s
			continue
		}
		if bodyweight && s.WeightKg == 0 && best.WeightKg == 0 {
			if s.Reps > best.Reps {
				best = s
			}
			continue
		}
		if s.score() > best.score() {
			best = s
		}
	}
	return best
}

// indexByID finds a set by identity within a session list. Empty IDs
// never match.
func indexByID(session []WorkoutSet, id string) int {
	if id == "" {
		return -1
	}
	for i := range session {
		if session[i].ID == id {
			return i
		}
	}
	return -1
}
