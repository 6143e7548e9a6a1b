package upload

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/claude/nextset/internal/workout"
)

const exportCSV = `exercise,weight_kg,reps,logged_at,estimated_1rm
Bench Press,100,5,2025-03-10T18:00:00Z,113
Squat,140,3,2025-03-10T18:10:00Z,
`

// memSender records batches and can be told to fail.
type memSender struct {
	batches [][]workout.WorkoutSet
	fail    bool
}

func (m *memSender) PostSets(sets []workout.WorkoutSet) (*Result, error) {
	if m.fail {
		return nil, errors.New("server unreachable")
	}
	m.batches = append(m.batches, sets)
	return &Result{Received: int64(len(sets)), Inserted: int64(len(sets))}, nil
}

func discardLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUploadDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "export-1.csv"), []byte(exportCSV), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "readme.md"), []byte("ignored"), 0644); err != nil {
		t.Fatal(err)
	}

	sender := &memSender{}
	up := NewUploader(sender, nil, discardLog())
	stats, err := up.Upload(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.FilesUploaded != 1 || stats.SetsSent != 2 || stats.SetsInserted != 2 {
		t.Errorf("stats = %+v, want 1 file with 2 sets", stats)
	}
	if len(sender.batches) != 1 || len(sender.batches[0]) != 2 {
		t.Errorf("batches = %v, want one batch of 2", sender.batches)
	}
}

func TestUploadSkipsViaState(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "export-1.csv"), []byte(exportCSV), 0644); err != nil {
		t.Fatal(err)
	}

	state, err := OpenStateDB(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer state.Close()

	sender := &memSender{}
	if _, err := NewUploader(sender, state, discardLog()).Upload(dir); err != nil {
		t.Fatal(err)
	}

	stats, err := NewUploader(sender, state, discardLog()).Upload(dir)
	if err != nil {
		t.Fatal(err)
	}
	if stats.FilesSkipped != 1 || stats.FilesUploaded != 0 {
		t.Errorf("stats = %+v, want the file skipped on rerun", stats)
	}
	if len(sender.batches) != 1 {
		t.Errorf("sent %d batches, want only the first run's", len(sender.batches))
	}
}

func TestUploadFailureNotMarked(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "export-1.csv"), []byte(exportCSV), 0644); err != nil {
		t.Fatal(err)
	}

	state, err := OpenStateDB(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer state.Close()

	sender := &memSender{fail: true}
	if _, err := NewUploader(sender, state, discardLog()).Upload(dir); err == nil {
		t.Fatal("expected error from failing sender")
	}

	// The file was not marked, so a later run retries it.
	sender.fail = false
	stats, err := NewUploader(sender, state, discardLog()).Upload(dir)
	if err != nil {
		t.Fatal(err)
	}
	if stats.FilesUploaded != 1 {
		t.Errorf("stats = %+v, want the file retried", stats)
	}
}

func TestUploadBadFileContinues(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a-bad.csv"), []byte("not,a,header\n1,2,3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b-good.csv"), []byte(exportCSV), 0644); err != nil {
		t.Fatal(err)
	}

	sender := &memSender{}
	stats, err := NewUploader(sender, nil, discardLog()).Upload(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.FilesErrored != 1 || stats.FilesUploaded != 1 {
		t.Errorf("stats = %+v, want the bad file counted and the good one sent", stats)
	}
}
