package mcp

import (
	"context"
	"time"

	"github.com/claude/nextset/internal/service"
	"github.com/claude/nextset/internal/workout"
)

// DataSource abstracts the data layer for MCP tools. Both
// *service.Service (local) and HTTPClient (remote via REST API) satisfy
// this interface.
type DataSource interface {
	Suggestions(ctx context.Context, programID, day string) ([]workout.Suggestion, error)
	TodaySession(ctx context.Context) ([]workout.WorkoutSet, error)
	History(ctx context.Context, start, end time.Time, exercise string) ([]workout.WorkoutSet, error)
	Progression(ctx context.Context, exercise string) ([]workout.ProgressionPoint, *workout.ProgressionSummary, error)
	PersonalRecord(ctx context.Context, exercise string) (*workout.WorkoutSet, error)
	WarmupPlan(ctx context.Context, exercise string, targetKg float64) ([]workout.PlannedWarmup, error)
	Programs(ctx context.Context) ([]workout.Program, error)
	Exercises(ctx context.Context) ([]workout.Exercise, error)
}

// Compile-time check: *service.Service satisfies DataSource.
var _ DataSource = (*service.Service)(nil)
