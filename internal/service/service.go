package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/claude/nextset/internal/workout"
)

// ErrInvalid marks a request rejected by input validation. Transport
// layers map it to a client error.
var ErrInvalid = errors.New("invalid input")

// Store is the persistence surface the service needs. *storage.DB
// implements it; tests substitute an in-memory version.
type Store interface {
	InsertSet(ctx context.Context, s workout.WorkoutSet) error
	InsertSets(ctx context.Context, sets []workout.WorkoutSet) (int64, error)
	DeleteSet(ctx context.Context, id string) error
	ListSets(ctx context.Context) ([]workout.WorkoutSet, error)
	QuerySets(ctx context.Context, start, end time.Time, exercise string) ([]workout.WorkoutSet, error)
}

// Service wires the workout engine to persistence and the static
// catalog and programs loaded at startup.
type Service struct {
	store    Store
	catalog  *workout.Catalog
	programs []workout.Program
	log      *slog.Logger
}

func New(store Store, catalog *workout.Catalog, programs []workout.Program, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: store, catalog: catalog, programs: programs, log: log}
}

// LogSet validates, enriches and stores one performed set. The exercise
// name is canonicalized against the catalog when known, the id is
// generated, and the estimated 1RM is computed at log time so later
// rankings never depend on the live catalog.
func (s *Service) LogSet(ctx context.Context, exercise string, weightKg float64, reps int, loggedAt time.Time) (workout.WorkoutSet, error) {
	if exercise == "" {
		return workout.WorkoutSet{}, fmt.Errorf("%w: exercise name is required", ErrInvalid)
	}
	if reps < 1 {
		return workout.WorkoutSet{}, fmt.Errorf("%w: reps must be at least 1", ErrInvalid)
	}
	if weightKg < 0 {
		return workout.WorkoutSet{}, fmt.Errorf("%w: weight must not be negative", ErrInvalid)
	}
	if loggedAt.IsZero() {
		loggedAt = time.Now()
	}
	if ex, ok := s.catalog.Lookup(exercise); ok {
		exercise = ex.Name
	}

	set := workout.WorkoutSet{
		ID:           uuid.NewString(),
		ExerciseName: exercise,
		WeightKg:     weightKg,
		Reps:         reps,
		LoggedAt:     loggedAt,
	}
	if oneRM, ok := s.catalog.EstimateOneRM(weightKg, reps, exercise); ok {
		set.Estimated1RM = &oneRM
	}

	if err := s.store.InsertSet(ctx, set); err != nil {
		return workout.WorkoutSet{}, err
	}
	s.log.Info("set logged", "exercise", set.ExerciseName, "weight_kg", set.WeightKg, "reps", set.Reps)
	return set, nil
}

// ImportSets stores a batch of already-shaped sets, filling missing ids
// and estimates. Returns the number actually inserted; duplicates by id
// are skipped.
func (s *Service) ImportSets(ctx context.Context, sets []workout.WorkoutSet) (int64, error) {
	prepared := make([]workout.WorkoutSet, 0, len(sets))
	for i, set := range sets {
		if set.ExerciseName == "" {
			return 0, fmt.Errorf("%w: set %d: exercise name is required", ErrInvalid, i)
		}
		if set.Reps < 1 {
			return 0, fmt.Errorf("%w: set %d: reps must be at least 1", ErrInvalid, i)
		}
		if set.ID == "" {
			set.ID = uuid.NewString()
		}
		if ex, ok := s.catalog.Lookup(set.ExerciseName); ok {
			set.ExerciseName = ex.Name
		}
		if set.Estimated1RM == nil {
			if oneRM, ok := s.catalog.EstimateOneRM(set.WeightKg, set.Reps, set.ExerciseName); ok {
				set.Estimated1RM = &oneRM
			}
		}
		prepared = append(prepared, set)
	}

	inserted, err := s.store.InsertSets(ctx, prepared)
	if err != nil {
		return 0, err
	}
	s.log.Info("sets imported", "received", len(sets), "inserted", inserted)
	return inserted, nil
}

// DeleteSet removes one logged set by id.
func (s *Service) DeleteSet(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalid)
	}
	return s.store.DeleteSet(ctx, id)
}

// History returns sets in a time range, optionally for one exercise.
// The exercise name is canonicalized against the catalog first.
func (s *Service) History(ctx context.Context, start, end time.Time, exercise string) ([]workout.WorkoutSet, error) {
	if ex, ok := s.catalog.Lookup(exercise); ok {
		exercise = ex.Name
	}
	return s.store.QuerySets(ctx, start, end, exercise)
}

// TodaySession returns today's sets in chronological order.
func (s *Service) TodaySession(ctx context.Context) ([]workout.WorkoutSet, error) {
	history, err := s.store.ListSets(ctx)
	if err != nil {
		return nil, err
	}
	return workout.TodaySession(history), nil
}

// HistoryByDay returns the full history grouped per calendar day,
// newest first.
func (s *Service) HistoryByDay(ctx context.Context) ([]workout.DayHistory, error) {
	history, err := s.store.ListSets(ctx)
	if err != nil {
		return nil, err
	}
	return workout.HistoryByDay(history), nil
}

// Suggestions evaluates the loaded programs against the full history.
func (s *Service) Suggestions(ctx context.Context, programID, day string) ([]workout.Suggestion, error) {
	history, err := s.store.ListSets(ctx)
	if err != nil {
		return nil, err
	}
	return s.catalog.Suggestions(s.programs, history, programID, day), nil
}

// Progression returns the daily-max estimated 1RM series for an
// exercise plus its summary.
func (s *Service) Progression(ctx context.Context, exercise string) ([]workout.ProgressionPoint, *workout.ProgressionSummary, error) {
	if exercise == "" {
		return nil, nil, fmt.Errorf("%w: exercise name is required", ErrInvalid)
	}
	if ex, ok := s.catalog.Lookup(exercise); ok {
		exercise = ex.Name
	}
	history, err := s.store.ListSets(ctx)
	if err != nil {
		return nil, nil, err
	}
	points := workout.Progression(history, exercise)
	return points, workout.SummarizeProgression(points), nil
}

// PersonalRecord returns the best working set ever logged for an
// exercise, nil when none exists.
func (s *Service) PersonalRecord(ctx context.Context, exercise string) (*workout.WorkoutSet, error) {
	if exercise == "" {
		return nil, fmt.Errorf("%w: exercise name is required", ErrInvalid)
	}
	if ex, ok := s.catalog.Lookup(exercise); ok {
		exercise = ex.Name
	}
	history, err := s.store.ListSets(ctx)
	if err != nil {
		return nil, err
	}
	return s.catalog.PersonalRecord(history, exercise), nil
}

// WarmupPlan resolves an exercise's warm-up protocol. With no explicit
// target the personal record's estimated 1RM anchors the percentages.
func (s *Service) WarmupPlan(ctx context.Context, exercise string, targetKg float64) ([]workout.PlannedWarmup, error) {
	if exercise == "" {
		return nil, fmt.Errorf("%w: exercise name is required", ErrInvalid)
	}
	if targetKg <= 0 {
		pr, err := s.PersonalRecord(ctx, exercise)
		if err != nil {
			return nil, err
		}
		if pr != nil && pr.Estimated1RM != nil {
			targetKg = float64(*pr.Estimated1RM)
		}
	}
	return s.catalog.WarmupPlan(exercise, targetKg), nil
}

// Programs returns the loaded programs in precedence order.
func (s *Service) Programs(ctx context.Context) ([]workout.Program, error) {
	return s.programs, nil
}

// Exercises returns the catalog entries in declaration order.
func (s *Service) Exercises(ctx context.Context) ([]workout.Exercise, error) {
	return s.catalog.Exercises(), nil
}
