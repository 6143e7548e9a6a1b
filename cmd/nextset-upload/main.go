package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/claude/nextset/internal/upload"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "NextSet server URL (e.g. https://nextset.tail1234.ts.net)")
	apiKey := flag.String("api-key", "", "API key for write endpoints (or NEXTSET_AUTH_API_KEY)")
	exportPath := flag.String("path", "", "path to directory of CSV exports")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("nextset-upload", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *exportPath == "" || *serverURL == "" {
		fmt.Fprintf(os.Stderr, "Usage: nextset-upload -server <URL> -api-key <key> -path <export dir>\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	key := *apiKey
	if key == "" {
		key = os.Getenv("NEXTSET_AUTH_API_KEY")
	}
	if key == "" {
		fmt.Fprintf(os.Stderr, "Error: -api-key or NEXTSET_AUTH_API_KEY is required\n")
		os.Exit(1)
	}

	// Strip trailing slash from server URL
	*serverURL = strings.TrimRight(*serverURL, "/")

	info, err := os.Stat(*exportPath)
	if err != nil || !info.IsDir() {
		log.Error("export directory not found", "path", *exportPath)
		os.Exit(1)
	}

	// Open state database
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Error("failed to get home directory", "error", err)
		os.Exit(1)
	}
	state, err := upload.OpenStateDB(filepath.Join(homeDir, ".nextset-upload"))
	if err != nil {
		log.Error("failed to open state database", "error", err)
		os.Exit(1)
	}
	defer state.Close()

	client := upload.NewClient(*serverURL, key)

	uploader := upload.NewUploader(client, state, log)
	stats, err := uploader.Upload(*exportPath)
	if err != nil {
		log.Error("upload failed", "error", err)
		printStats(stats)
		os.Exit(1)
	}

	printStats(stats)
	log.Info("upload complete")
}

func printStats(stats *upload.Stats) {
	fmt.Println()
	fmt.Println("=== Upload Summary ===")
	fmt.Printf("  Files uploaded:   %d\n", stats.FilesUploaded)
	fmt.Printf("  Files skipped:    %d (already uploaded)\n", stats.FilesSkipped)
	fmt.Printf("  Files errored:    %d\n", stats.FilesErrored)
	fmt.Println()
	fmt.Printf("  Sets sent:        %d\n", stats.SetsSent)
	fmt.Printf("  Sets inserted:    %d\n", stats.SetsInserted)
	fmt.Println()
}
