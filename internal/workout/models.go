package workout

import "time"

// WorkoutSet is a single performed set. Sets are immutable once logged;
// everything else in this package derives values from them.
type WorkoutSet struct {
	ID           string    `json:"id"`
	ExerciseName string    `json:"exercise_name"`
	WeightKg     float64   `json:"weight_kg"`
	Reps         int       `json:"reps"`
	LoggedAt     time.Time `json:"logged_at"`
	Estimated1RM *int      `json:"estimated_1rm,omitempty"`
}

// score ranks a set for best-performance comparisons: the estimated 1RM
// when one was recorded, otherwise tonnage (weight x reps).
func (s WorkoutSet) score() float64 {
	if s.Estimated1RM != nil && *s.Estimated1RM != 0 {
		return float64(*s.Estimated1RM)
	}
	return s.WeightKg * float64(s.Reps)
}

// RepType distinguishes rep-counted exercises from time-held ones, where
// the Reps field of a logged set carries seconds instead.
type RepType string

const (
	RepTypeReps RepType = "reps"
	RepTypeTime RepType = "time"
)

// WeightUnitPercent marks a warm-up step expressed as a percentage of the
// target load rather than an absolute weight.
const WeightUnitPercent = "%"

// WarmupStep is one prescribed warm-up set in an exercise's protocol.
type WarmupStep struct {
	Weight float64 `yaml:"weight" json:"weight"`
	Unit   string  `yaml:"unit,omitempty" json:"unit,omitempty"`
	Reps   int     `yaml:"reps" json:"reps"`
}

// Exercise is a static catalog entry. Matched case-insensitively against
// logged exercise names; read-only at runtime.
type Exercise struct {
	Name         string       `yaml:"name" json:"name"`
	Tags         []string     `yaml:"tags,omitempty" json:"tags,omitempty"`
	Favorite     bool         `yaml:"favorite,omitempty" json:"favorite,omitempty"`
	Powerlifting bool         `yaml:"powerlifting,omitempty" json:"powerlifting,omitempty"`
	Bodyweight   bool         `yaml:"bodyweight,omitempty" json:"bodyweight,omitempty"`
	RepType      RepType      `yaml:"rep_type,omitempty" json:"rep_type,omitempty"`
	Warmup       []WarmupStep `yaml:"warmup,omitempty" json:"warmup,omitempty"`
}

// Program is a structured training plan: ordered sessions of ordered
// blocks of ordered exercises. Authored in YAML, read-only at runtime.
type Program struct {
	ID       string           `yaml:"id" json:"id"`
	Title    string           `yaml:"title" json:"title"`
	Sessions []ProgramSession `yaml:"sessions" json:"sessions"`
}

// ProgramSession is one scheduled training day within a program.
// Day is a free-form day-of-week token resolved by NormalizeDay, or the
// wildcard DayAny.
type ProgramSession struct {
	Name   string  `yaml:"name" json:"name"`
	Day    string  `yaml:"day" json:"day"`
	Blocks []Block `yaml:"blocks" json:"blocks"`
}

// Block is a named sub-grouping of exercises within a session. Order
// within and across blocks is the prescribed performance order.
type Block struct {
	Name      string            `yaml:"name" json:"name"`
	Exercises []ProgramExercise `yaml:"exercises" json:"exercises"`
}

// ProgramExercise is one prescribed exercise within a block.
type ProgramExercise struct {
	ExerciseName string `yaml:"exercise" json:"exercise"`
	Sets         int    `yaml:"sets" json:"sets"`
	Reps         string `yaml:"reps" json:"reps"`
	TargetLoad   string `yaml:"target,omitempty" json:"target,omitempty"`
	Rest         string `yaml:"rest,omitempty" json:"rest,omitempty"`
	Notes        string `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// Suggestion is one actionable entry in the engine's output. A nil
// NextExercise with a non-nil ProgramName signals "program complete for
// today"; both nil signals "no program".
type Suggestion struct {
	NextExercise       *string          `json:"next_exercise"`
	ProgramName        *string          `json:"program_name"`
	BlockName          *string          `json:"block_name"`
	CompletedSets      int              `json:"completed_sets"`
	TargetSets         int              `json:"target_sets"`
	SuggestedReps      *int             `json:"suggested_reps"`
	SuggestedWeightKg  *float64         `json:"suggested_weight_kg"`
	Details            *ProgramExercise `json:"details"`
	CompletedExercises []string         `json:"completed_exercises"`
	RemainingExercises []string         `json:"remaining_exercises"`
	MidExercise        bool             `json:"mid_exercise"`
}
