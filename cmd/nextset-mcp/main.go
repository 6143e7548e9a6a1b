// Package main runs the NextSet MCP server over stdio for local agent use.
// The same MCP server is also mounted on the backend at /mcp over HTTP, so
// clients can use either transport. This binary talks to a running NextSet
// server via its REST API, so it needs no database access of its own.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/claude/nextset/internal/mcp"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "NextSet server URL (e.g. https://nextset.tail1234.ts.net)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("nextset-mcp", Version)
		return
	}

	if *serverURL == "" {
		fmt.Fprintf(os.Stderr, "Usage: nextset-mcp -server <URL>\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// stdout carries the MCP protocol, so logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ds := mcp.NewHTTPClient(strings.TrimRight(*serverURL, "/"))
	srv := mcp.New(ds, Version, log)

	if err := mcpserver.ServeStdio(srv); err != nil {
		log.Error("mcp server exited", "error", err)
		os.Exit(1)
	}
}
