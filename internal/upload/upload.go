package upload

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/claude/nextset/internal/importer"
	"github.com/claude/nextset/internal/workout"
)

// Stats tracks upload progress.
type Stats struct {
	FilesUploaded int
	FilesSkipped  int
	FilesErrored  int
	SetsSent      int64
	SetsInserted  int64
}

// sender is the slice of the HTTP client the uploader needs.
type sender interface {
	PostSets(sets []workout.WorkoutSet) (*Result, error)
}

// Uploader pushes local CSV export files to a remote NextSet server.
// Files already sent (same path, size, and hash) are skipped.
type Uploader struct {
	client sender
	state  *StateDB
	log    *slog.Logger
	stats  Stats
}

// NewUploader creates an Uploader. state may be nil to always resend.
func NewUploader(client sender, state *StateDB, log *slog.Logger) *Uploader {
	return &Uploader{client: client, state: state, log: log}
}

// Upload sends all .csv files in the directory, sorted by name.
func (u *Uploader) Upload(dir string) (*Stats, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return &u.stats, err
	}
	sort.Strings(files)

	for _, path := range files {
		if err := u.uploadFile(path); err != nil {
			return &u.stats, fmt.Errorf("uploading %s: %w", filepath.Base(path), err)
		}
	}
	return &u.stats, nil
}

func (u *Uploader) uploadFile(path string) error {
	name := filepath.Base(path)

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	var hash string
	if u.state != nil {
		hash, err = HashFile(path)
		if err != nil {
			return fmt.Errorf("hashing: %w", err)
		}
		done, err := u.state.IsUploaded(name, info.Size(), hash)
		if err != nil {
			return fmt.Errorf("checking state: %w", err)
		}
		if done {
			u.stats.FilesSkipped++
			u.log.Info("skipping file (already uploaded)", "file", name)
			return nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	sets, err := importer.ParseCSV(f)
	f.Close()
	if err != nil {
		u.log.Warn("parse failed", "file", name, "error", err)
		u.stats.FilesErrored++
		return nil
	}

	result, err := u.client.PostSets(sets)
	if err != nil {
		return err
	}
	u.stats.FilesUploaded++
	u.stats.SetsSent += int64(len(sets))
	u.stats.SetsInserted += result.Inserted

	if u.state != nil {
		if err := u.state.MarkUploaded(name, info.Size(), hash); err != nil {
			return fmt.Errorf("recording state: %w", err)
		}
	}
	u.log.Info("uploaded file", "file", name, "sets", len(sets), "inserted", result.Inserted)
	return nil
}
