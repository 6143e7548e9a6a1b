package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("NextSet", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("NextSet workout tracking server. Ask what to do next in today's session, inspect logged sets, exercise progression, personal records, and warm-up plans. Weights are kilograms."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetSuggestions, Handler: h.getSuggestions},
		server.ServerTool{Tool: toolGetTodaySession, Handler: h.getTodaySession},
		server.ServerTool{Tool: toolGetHistory, Handler: h.getHistory},
		server.ServerTool{Tool: toolGetProgression, Handler: h.getProgression},
		server.ServerTool{Tool: toolGetPersonalRecord, Handler: h.getPersonalRecord},
		server.ServerTool{Tool: toolGetWarmupPlan, Handler: h.getWarmupPlan},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolListPrograms, Handler: h.listPrograms},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resTodaySummary, Handler: h.todaySummary},
		server.ServerResource{Resource: resProgramCatalog, Handler: h.programCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resTodaySummary = mcp.NewResource(
	"nextset://today_summary",
	"Today Summary",
	mcp.WithResourceDescription("Today's logged sets and the current suggestions for the active program"),
	mcp.WithMIMEType("application/json"),
)

var resProgramCatalog = mcp.NewResource(
	"nextset://program_catalog",
	"Program Catalog",
	mcp.WithResourceDescription("All loaded training programs with their sessions, blocks, and prescribed exercises"),
	mcp.WithMIMEType("application/json"),
)
