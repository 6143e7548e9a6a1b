package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) todaySummary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	sets, err := h.ds.TodaySession(ctx)
	if err != nil {
		return nil, err
	}

	suggestions, err := h.ds.Suggestions(ctx, "", "")
	if err != nil {
		h.log.Warn("today_summary: suggestions failed", "error", err)
	}

	summary := map[string]any{
		"date":        time.Now().Format("2006-01-02"),
		"sets":        sets,
		"suggestions": suggestions,
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) programCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	programs, err := h.ds.Programs(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(programs)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
