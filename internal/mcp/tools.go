package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// defaultTimeRange returns start/end defaulting to the last 90 days.
func defaultTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -90)
	}

	return start, end, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

// --- Tool definitions ---

var toolGetSuggestions = mcp.NewTool("get_suggestions",
	mcp.WithDescription("Get what to do next in today's training session. Returns one entry per incomplete prescribed exercise with set progress and a suggested load, a program-complete marker when everything is done, or an empty marker when no program applies."),
	mcp.WithString("program", mcp.Description("Restrict to one program id. Defaults to the first program with a matching session.")),
	mcp.WithString("day", mcp.Description("Override the training day (e.g. 'Lundi', 'monday', 'mon', '1'). Defaults to today.")),
)

var toolGetTodaySession = mcp.NewTool("get_today_session",
	mcp.WithDescription("List the sets logged today (since local midnight), in chronological order."),
)

var toolGetHistory = mcp.NewTool("get_history",
	mcp.WithDescription("Query logged sets in a time range. Each set carries weight (kg), reps, and the estimated 1RM recorded at log time."),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 90 days ago.")),
	mcp.WithString("end", mcp.Description("End date (ISO 8601 or YYYY-MM-DD). Defaults to now.")),
	mcp.WithString("exercise", mcp.Description("Filter by exercise name (e.g. 'Bench Press')")),
)

var toolGetProgression = mcp.NewTool("get_exercise_progression",
	mcp.WithDescription("Daily-max estimated 1RM series for one exercise, with a summary comparing the latest point to the previous one."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name")),
)

var toolGetPersonalRecord = mcp.NewTool("get_personal_record",
	mcp.WithDescription("The best working set ever logged for an exercise. Warm-up sets are filtered out per session before ranking."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name")),
)

var toolGetWarmupPlan = mcp.NewTool("get_warmup_plan",
	mcp.WithDescription("Resolve an exercise's warm-up protocol to concrete weights. Percentage steps anchor on the target weight, or on the personal record's estimated 1RM when no target is given."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name")),
	mcp.WithNumber("target", mcp.Description("Target working weight in kg. Defaults to the personal record's estimated 1RM.")),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List the exercise catalog: names, tags, bodyweight/powerlifting flags, rep type, and warm-up protocols."),
)

var toolListPrograms = mcp.NewTool("list_programs",
	mcp.WithDescription("List the loaded training programs with their sessions, blocks, and prescribed sets/reps."),
)

// --- Tool handlers ---

func (h *handlers) getSuggestions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	suggestions, err := h.ds.Suggestions(ctx, req.GetString("program", ""), req.GetString("day", ""))
	if err != nil {
		h.log.Error("mcp get_suggestions", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(suggestions)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getTodaySession(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sets, err := h.ds.TodaySession(ctx)
	if err != nil {
		h.log.Error("mcp get_today_session", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(sets)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	sets, err := h.ds.History(ctx, start, end, req.GetString("exercise", ""))
	if err != nil {
		h.log.Error("mcp get_history", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(sets)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgression(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}

	points, summary, err := h.ds.Progression(ctx, exercise)
	if err != nil {
		h.log.Error("mcp get_exercise_progression", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"points":  points,
		"summary": summary,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPersonalRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}

	record, err := h.ds.PersonalRecord(ctx, exercise)
	if err != nil {
		h.log.Error("mcp get_personal_record", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if record == nil {
		return mcp.NewToolResultText("no working sets logged for " + exercise), nil
	}

	result, err := mcp.NewToolResultJSON(record)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWarmupPlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}

	plan, err := h.ds.WarmupPlan(ctx, exercise, req.GetFloat("target", 0))
	if err != nil {
		h.log.Error("mcp get_warmup_plan", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if plan == nil {
		return mcp.NewToolResultText("no warm-up protocol for " + exercise), nil
	}

	result, err := mcp.NewToolResultJSON(plan)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listExercises(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercises, err := h.ds.Exercises(ctx)
	if err != nil {
		h.log.Error("mcp list_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(exercises)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listPrograms(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	programs, err := h.ds.Programs(ctx)
	if err != nil {
		h.log.Error("mcp list_programs", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(programs)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
