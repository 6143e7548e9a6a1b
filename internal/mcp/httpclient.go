package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/claude/nextset/internal/workout"
)

// HTTPClient implements DataSource by calling the NextSet REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, int, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		return nil, resp.StatusCode, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, resp.StatusCode, nil
}

func timeParams(start, end time.Time) url.Values {
	v := url.Values{}
	v.Set("start", start.Format(time.RFC3339))
	v.Set("end", end.Format(time.RFC3339))
	return v
}

func (c *HTTPClient) Suggestions(ctx context.Context, programID, day string) ([]workout.Suggestion, error) {
	params := url.Values{}
	if programID != "" {
		params.Set("program", programID)
	}
	if day != "" {
		params.Set("day", day)
	}

	body, _, err := c.get(ctx, "/api/v1/suggestions", params)
	if err != nil {
		return nil, err
	}

	var suggestions []workout.Suggestion
	if err := json.Unmarshal(body, &suggestions); err != nil {
		return nil, fmt.Errorf("httpclient: decode suggestions: %w", err)
	}
	return suggestions, nil
}

func (c *HTTPClient) TodaySession(ctx context.Context) ([]workout.WorkoutSet, error) {
	body, _, err := c.get(ctx, "/api/v1/today", nil)
	if err != nil {
		return nil, err
	}

	var sets []workout.WorkoutSet
	if err := json.Unmarshal(body, &sets); err != nil {
		return nil, fmt.Errorf("httpclient: decode today session: %w", err)
	}
	return sets, nil
}

func (c *HTTPClient) History(ctx context.Context, start, end time.Time, exercise string) ([]workout.WorkoutSet, error) {
	params := timeParams(start, end)
	if exercise != "" {
		params.Set("exercise", exercise)
	}

	body, _, err := c.get(ctx, "/api/v1/sets", params)
	if err != nil {
		return nil, err
	}

	var sets []workout.WorkoutSet
	if err := json.Unmarshal(body, &sets); err != nil {
		return nil, fmt.Errorf("httpclient: decode history: %w", err)
	}
	return sets, nil
}

func (c *HTTPClient) Progression(ctx context.Context, exercise string) ([]workout.ProgressionPoint, *workout.ProgressionSummary, error) {
	params := url.Values{}
	params.Set("exercise", exercise)

	body, _, err := c.get(ctx, "/api/v1/stats/progression", params)
	if err != nil {
		return nil, nil, err
	}

	var resp struct {
		Points  []workout.ProgressionPoint  `json:"points"`
		Summary *workout.ProgressionSummary `json:"summary"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, nil, fmt.Errorf("httpclient: decode progression: %w", err)
	}
	return resp.Points, resp.Summary, nil
}

func (c *HTTPClient) PersonalRecord(ctx context.Context, exercise string) (*workout.WorkoutSet, error) {
	params := url.Values{}
	params.Set("exercise", exercise)

	body, status, err := c.get(ctx, "/api/v1/records", params)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}

	var record workout.WorkoutSet
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("httpclient: decode record: %w", err)
	}
	return &record, nil
}

func (c *HTTPClient) WarmupPlan(ctx context.Context, exercise string, targetKg float64) ([]workout.PlannedWarmup, error) {
	params := url.Values{}
	params.Set("exercise", exercise)
	if targetKg > 0 {
		params.Set("target", strconv.FormatFloat(targetKg, 'f', -1, 64))
	}

	body, _, err := c.get(ctx, "/api/v1/warmup", params)
	if err != nil {
		return nil, err
	}

	var plan []workout.PlannedWarmup
	if err := json.Unmarshal(body, &plan); err != nil {
		return nil, fmt.Errorf("httpclient: decode warmup plan: %w", err)
	}
	return plan, nil
}

func (c *HTTPClient) Programs(ctx context.Context) ([]workout.Program, error) {
	body, _, err := c.get(ctx, "/api/v1/programs", nil)
	if err != nil {
		return nil, err
	}

	var programs []workout.Program
	if err := json.Unmarshal(body, &programs); err != nil {
		return nil, fmt.Errorf("httpclient: decode programs: %w", err)
	}
	return programs, nil
}

func (c *HTTPClient) Exercises(ctx context.Context) ([]workout.Exercise, error) {
	body, _, err := c.get(ctx, "/api/v1/exercises", nil)
	if err != nil {
		return nil, err
	}

	var exercises []workout.Exercise
	if err := json.Unmarshal(body, &exercises); err != nil {
		return nil, fmt.Errorf("httpclient: decode exercises: %w", err)
	}
	return exercises, nil
}
