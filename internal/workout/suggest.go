package workout

import (
	"strconv"
	"strings"
	"time"
)

// Suggestions walks the selected program's structure and returns one
// suggestion per incomplete exercise, in prescribed order, so a caller can
// cycle between all pending exercises rather than just the next one.
//
// programID restricts the walk to a single program; empty considers all
// programs in order and commits to the first that has any session. day
// overrides the weekday used for session selection; empty means today.
//
// The result is never empty: when every exercise is done it holds a single
// program-complete record (nil NextExercise, non-nil ProgramName), and
// when no program yields a session it holds a single all-nil record.
// The engine never fails; missing data degrades to those records.
func (c *Catalog) Suggestions(programs []Program, history []WorkoutSet, programID, day string) []Suggestion {
	return c.suggestions(programs, history, programID, day, time.Now())
}

func (c *Catalog) suggestions(programs []Program, history []WorkoutSet, programID, day string, now time.Time) []Suggestion {
	resolvedDay := day
	if resolvedDay == "" {
		resolvedDay = currentDay(now)
	}
	today := todayByExercise(history, now)

	for _, program := range programs {
		if programID != "" && program.ID != programID {
			continue
		}

		session := sessionForDay(program, resolvedDay)
		if session == nil {
			continue
		}

		suggestions := c.walkSession(program, session, history, today)
		if len(suggestions) == 0 {
			// Everything prescribed for this session is done.
			title := program.Title
			touched := today.Exercises()
			if touched == nil {
				touched = []string{}
			}
			suggestions = append(suggestions, Suggestion{
				ProgramName:        &title,
				CompletedExercises: touched,
				RemainingExercises: []string{},
			})
		}
		return suggestions
	}

	// No program had a session to offer.
	return []Suggestion{{
		CompletedExercises: []string{},
		RemainingExercises: []string{},
	}}
}

// sessionForDay picks the session whose day matches, falling back to the
// program's first session. A session on the wildcard day only matches when
// the caller asked for the wildcard explicitly, since weekdays never
// normalize to it.
func sessionForDay(program Program, day string) *ProgramSession {
	want := NormalizeDay(day)
	for i := range program.Sessions {
		if NormalizeDay(program.Sessions[i].Day) == want {
			return &program.Sessions[i]
		}
	}
	if len(program.Sessions) > 0 {
		return &program.Sessions[0]
	}
	return nil
}

func (c *Catalog) walkSession(program Program, session *ProgramSession, history []WorkoutSet, today *DaySets) []Suggestion {
	var suggestions []Suggestion

	for bi := range session.Blocks {
		block := &session.Blocks[bi]
		for ei := range block.Exercises {
			pe := block.Exercises[ei]

			allTime := filterByExercise(history, pe.ExerciseName)
			best := BestSet(allTime)

			todaySets := today.Sets(pe.ExerciseName)
			working := 0
			for _, s := range todaySets {
				if !c.IsWarmupSet(s, best, todaySets) {
					working++
				}
			}
			if working >= pe.Sets {
				continue
			}

			name := pe.ExerciseName
			blockName := block.Name
			title := program.Title
			load := suggestedLoad(best)
			details := pe

			suggestions = append(suggestions, Suggestion{
				NextExercise:       &name,
				ProgramName:        &title,
				BlockName:          &blockName,
				CompletedSets:      working,
				TargetSets:         pe.Sets,
				SuggestedReps:      parseLeadingInt(pe.Reps),
				SuggestedWeightKg:  &load,
				Details:            &details,
				CompletedExercises: completedInSession(session, today),
				RemainingExercises: remainingInBlock(block, today),
				MidExercise:        working > 0,
			})
		}
	}
	return suggestions
}

// suggestedLoad recommends the all-time best's estimated 1RM when
// recorded, its raw weight otherwise, and 0 with no history at all.
func suggestedLoad(best *WorkoutSet) float64 {
	if best == nil {
		return 0
	}
	if best.Estimated1RM != nil && *best.Estimated1RM != 0 {
		return float64(*best.Estimated1RM)
	}
	return best.WeightKg
}

// completedInSession lists the exercises touched today that are both
// prescribed by this session and have reached their raw set target.
func completedInSession(session *ProgramSession, today *DaySets) []string {
	completed := []string{}
	for _, name := range today.Exercises() {
		pe := findPrescribed(session, name)
		if pe != nil && len(today.Sets(name)) >= pe.Sets {
			completed = append(completed, name)
		}
	}
	return completed
}

// remainingInBlock lists the block's exercises still short of their raw
// set target today.
func remainingInBlock(block *Block, today *DaySets) []string {
	remaining := []string{}
	for _, pe := range block.Exercises {
		if len(today.Sets(pe.ExerciseName)) < pe.Sets {
			remaining = append(remaining, pe.ExerciseName)
		}
	}
	return remaining
}

func findPrescribed(session *ProgramSession, exercise string) *ProgramExercise {
	for bi := range session.Blocks {
		for ei := range session.Blocks[bi].Exercises {
			if session.Blocks[bi].Exercises[ei].ExerciseName == exercise {
				return &session.Blocks[bi].Exercises[ei]
			}
		}
	}
	return nil
}

// parseLeadingInt extracts the leading integer of a rep descriptor such as
// "8" or "8-10". Nil when the descriptor does not start with digits;
// callers treat that as "no recommendation".
func parseLeadingInt(s string) *int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return nil
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}
