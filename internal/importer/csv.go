package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/claude/nextset/internal/workout"
)

// expected CSV columns, in header order.
var csvColumns = []string{"exercise", "weight_kg", "reps", "logged_at", "estimated_1rm"}

// ParseCSV reads a workout export. The first row must be the header
// exercise,weight_kg,reps,logged_at,estimated_1rm; estimated_1rm may be
// blank, in which case the importer computes it from the catalog.
// Timestamps accept RFC 3339 or date-only form.
func ParseCSV(r io.Reader) ([]workout.WorkoutSet, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var sets []workout.WorkoutSet
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		set, err := parseRecord(record, cols)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		sets = append(sets, set)
	}
	return sets, nil
}

func mapColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range csvColumns[:4] {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q in header", required)
		}
	}
	return cols, nil
}

func parseRecord(record []string, cols map[string]int) (workout.WorkoutSet, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	exercise := field("exercise")
	if exercise == "" {
		return workout.WorkoutSet{}, fmt.Errorf("exercise is required")
	}

	weight := 0.0
	if v := field("weight_kg"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return workout.WorkoutSet{}, fmt.Errorf("invalid weight_kg %q", v)
		}
		weight = parsed
	}

	reps, err := strconv.Atoi(field("reps"))
	if err != nil || reps < 1 {
		return workout.WorkoutSet{}, fmt.Errorf("invalid reps %q", field("reps"))
	}

	loggedAt, err := parseTimestamp(field("logged_at"))
	if err != nil {
		return workout.WorkoutSet{}, err
	}

	set := workout.WorkoutSet{
		ExerciseName: exercise,
		WeightKg:     weight,
		Reps:         reps,
		LoggedAt:     loggedAt,
	}
	if v := field("estimated_1rm"); v != "" {
		oneRM, err := strconv.Atoi(v)
		if err != nil {
			return workout.WorkoutSet{}, fmt.Errorf("invalid estimated_1rm %q", v)
		}
		set.Estimated1RM = &oneRM
	}
	return set, nil
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("logged_at is required")
	}
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.ParseInLocation("2006-01-02", s, time.Local)
	if err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid logged_at %q", s)
}
