package upload

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/claude/nextset/internal/workout"
)

func sampleSets() []workout.WorkoutSet {
	return []workout.WorkoutSet{
		{ID: "a", ExerciseName: "Bench Press", WeightKg: 100, Reps: 5, LoggedAt: time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)},
		{ID: "b", ExerciseName: "Squat", WeightKg: 140, Reps: 3, LoggedAt: time.Date(2025, 3, 10, 18, 10, 0, 0, time.UTC)},
	}
}

func TestPostSets(t *testing.T) {
	var gotPath, gotKey string
	var gotSets []workout.WorkoutSet
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-API-Key")
		if err := json.NewDecoder(r.Body).Decode(&gotSets); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		json.NewEncoder(w).Encode(Result{Received: 2, Inserted: 1})
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "secret")
	result, err := client.PostSets(sampleSets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/v1/sets/batch" {
		t.Errorf("path = %q, want /api/v1/sets/batch", gotPath)
	}
	if gotKey != "secret" {
		t.Errorf("X-API-Key = %q, want secret", gotKey)
	}
	if len(gotSets) != 2 || gotSets[0].ID != "a" {
		t.Errorf("server received %+v", gotSets)
	}
	if result.Received != 2 || result.Inserted != 1 {
		t.Errorf("result = %+v, want received 2 inserted 1", result)
	}
}

func TestPostSetsRetries(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 2 {
			http.Error(w, "temporarily down", http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(Result{Received: 2, Inserted: 2})
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "secret")
	result, err := client.PostSets(sampleSets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("server called %d times, want 2", calls)
	}
	if result.Inserted != 2 {
		t.Errorf("result = %+v", result)
	}
}

func TestPostSetsGivesUp(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "wrong-key")
	if _, err := client.PostSets(sampleSets()); err == nil {
		t.Fatal("expected error after repeated failures")
	}
	if calls != 3 {
		t.Errorf("server called %d times, want 3", calls)
	}
}
