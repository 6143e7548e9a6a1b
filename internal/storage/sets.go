package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/claude/nextset/internal/workout"
)

// ErrNotFound reports a lookup or delete that matched no row.
var ErrNotFound = errors.New("not found")

// defaultUserID scopes all rows to the single local user. The column
// exists so a future multi-user deployment only needs plumbing, not a
// schema change.
const defaultUserID = 1

// InsertSet stores one logged set.
func (db *DB) InsertSet(ctx context.Context, s workout.WorkoutSet) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO workout_sets (id, user_id, exercise_name, weight_kg, reps, logged_at, estimated_1rm)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, defaultUserID, s.ExerciseName, s.WeightKg, s.Reps, s.LoggedAt, s.Estimated1RM)
	if err != nil {
		return fmt.Errorf("inserting workout set: %w", err)
	}
	return nil
}

// InsertSets batch-inserts logged sets, skipping rows whose id already
// exists so importers can replay files safely. Returns count inserted.
func (db *DB) InsertSets(ctx context.Context, sets []workout.WorkoutSet) (int64, error) {
	if len(sets) == 0 {
		return 0, nil
	}

	query := `INSERT INTO workout_sets (id, user_id, exercise_name, weight_kg, reps, logged_at, estimated_1rm) VALUES `
	args := make([]any, 0, len(sets)*7)
	valueStrings := make([]string, 0, len(sets))

	for i, s := range sets {
		base := i * 7
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7,
		))
		args = append(args, s.ID, defaultUserID, s.ExerciseName, s.WeightKg, s.Reps, s.LoggedAt, s.Estimated1RM)
	}

	query += strings.Join(valueStrings, ",") + " ON CONFLICT DO NOTHING"

	tag, err := db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("inserting workout sets: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteSet removes one set by id. ErrNotFound when no row matched.
func (db *DB) DeleteSet(ctx context.Context, id string) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM workout_sets WHERE id = $1 AND user_id = $2`, id, defaultUserID)
	if err != nil {
		return fmt.Errorf("deleting workout set: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListSets retrieves the full history in chronological order.
func (db *DB) ListSets(ctx context.Context) ([]workout.WorkoutSet, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, exercise_name, weight_kg, reps, logged_at, estimated_1rm
		 FROM workout_sets
		 WHERE user_id = $1
		 ORDER BY logged_at ASC`, defaultUserID)
	if err != nil {
		return nil, fmt.Errorf("listing workout sets: %w", err)
	}
	defer rows.Close()
	return scanSets(rows)
}

// QuerySets retrieves sets in a time range, optionally restricted to one
// exercise name, in chronological order.
func (db *DB) QuerySets(ctx context.Context, start, end time.Time, exercise string) ([]workout.WorkoutSet, error) {
	query := `SELECT id, exercise_name, weight_kg, reps, logged_at, estimated_1rm
		 FROM workout_sets
		 WHERE user_id = $1 AND logged_at >= $2 AND logged_at < $3`
	args := []any{defaultUserID, start, end}
	if exercise != "" {
		query += ` AND exercise_name = $4`
		args = append(args, exercise)
	}
	query += ` ORDER BY logged_at ASC`

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying workout sets: %w", err)
	}
	defer rows.Close()
	return scanSets(rows)
}

func scanSets(rows pgx.Rows) ([]workout.WorkoutSet, error) {
	var result []workout.WorkoutSet
	for rows.Next() {
		var s workout.WorkoutSet
		if err := rows.Scan(&s.ID, &s.ExerciseName, &s.WeightKg, &s.Reps, &s.LoggedAt, &s.Estimated1RM); err != nil {
			return nil, fmt.Errorf("scanning workout set: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}
