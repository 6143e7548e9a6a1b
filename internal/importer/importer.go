package importer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/claude/nextset/internal/workout"
)

// Stats tracks import progress.
type Stats struct {
	FilesProcessed int
	FilesSkipped   int
	FilesErrored   int

	SetsParsed   int64
	SetsInserted int64
}

// inserter is the slice of the service the importer needs.
type inserter interface {
	ImportSets(ctx context.Context, sets []workout.WorkoutSet) (int64, error)
}

// Importer reads CSV export files from a directory and inserts the sets.
// A state database remembers which files were already imported so reruns
// only pick up new or changed exports.
type Importer struct {
	svc    inserter
	state  *StateDB
	log    *slog.Logger
	dryRun bool
	stats  Stats
}

// New creates a new Importer. state may be nil; every file is then read.
func New(svc inserter, state *StateDB, log *slog.Logger, dryRun bool) *Importer {
	return &Importer{svc: svc, state: state, log: log, dryRun: dryRun}
}

// Import processes all .csv files in the given directory, sorted by name.
func (imp *Importer) Import(ctx context.Context, dir string) (*Stats, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return &imp.stats, err
	}
	sort.Strings(files)

	for _, path := range files {
		if err := imp.importFile(ctx, path); err != nil {
			return &imp.stats, fmt.Errorf("importing %s: %w", filepath.Base(path), err)
		}
	}
	return &imp.stats, nil
}

func (imp *Importer) importFile(ctx context.Context, path string) error {
	name := filepath.Base(path)

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	var hash string
	if imp.state != nil {
		hash, err = HashFile(path)
		if err != nil {
			return fmt.Errorf("hashing: %w", err)
		}
		done, err := imp.state.IsImported(name, info.Size(), hash)
		if err != nil {
			return fmt.Errorf("checking state: %w", err)
		}
		if done {
			imp.stats.FilesSkipped++
			imp.log.Info("skipping file (already imported)", "file", name)
			return nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	sets, err := ParseCSV(f)
	f.Close()
	if err != nil {
		imp.log.Warn("parse failed", "file", name, "error", err)
		imp.stats.FilesErrored++
		return nil
	}

	imp.stats.FilesProcessed++
	imp.stats.SetsParsed += int64(len(sets))

	if imp.dryRun {
		imp.stats.SetsInserted += int64(len(sets))
		return nil
	}

	inserted, err := imp.svc.ImportSets(ctx, sets)
	if err != nil {
		return err
	}
	imp.stats.SetsInserted += inserted

	if imp.state != nil {
		if err := imp.state.MarkImported(name, info.Size(), hash); err != nil {
			return fmt.Errorf("recording state: %w", err)
		}
	}
	imp.log.Info("imported file", "file", name, "sets", len(sets), "inserted", inserted)
	return nil
}
