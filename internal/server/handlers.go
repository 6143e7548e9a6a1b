package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/claude/nextset/internal/service"
	"github.com/claude/nextset/internal/storage"
	"github.com/claude/nextset/internal/workout"
)

type logSetRequest struct {
	ExerciseName string    `json:"exercise_name"`
	WeightKg     float64   `json:"weight_kg"`
	Reps         int       `json:"reps"`
	LoggedAt     time.Time `json:"logged_at"`
}

func (s *Server) handleLogSet(w http.ResponseWriter, r *http.Request) {
	var req logSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	set, err := s.svc.LogSet(r.Context(), req.ExerciseName, req.WeightKg, req.Reps, req.LoggedAt)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, set)
}

func (s *Server) handleImportSets(w http.ResponseWriter, r *http.Request) {
	var sets []workout.WorkoutSet
	if err := json.NewDecoder(r.Body).Decode(&sets); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	inserted, err := s.svc.ImportSets(r.Context(), sets)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"received": int64(len(sets)), "inserted": inserted})
}

func (s *Server) handleDeleteSet(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteSet(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleQuerySets(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sets, err := s.svc.History(r.Context(), start, end, r.URL.Query().Get("exercise"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if sets == nil {
		sets = []workout.WorkoutSet{}
	}
	writeJSON(w, http.StatusOK, sets)
}

func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	sets, err := s.svc.TodaySession(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if sets == nil {
		sets = []workout.WorkoutSet{}
	}
	writeJSON(w, http.StatusOK, sets)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	days, err := s.svc.HistoryByDay(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if days == nil {
		days = []workout.DayHistory{}
	}
	writeJSON(w, http.StatusOK, days)
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	suggestions, err := s.svc.Suggestions(r.Context(), q.Get("program"), q.Get("day"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestions)
}

func (s *Server) handleProgression(w http.ResponseWriter, r *http.Request) {
	points, summary, err := s.svc.Progression(r.Context(), r.URL.Query().Get("exercise"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if points == nil {
		points = []workout.ProgressionPoint{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"points":  points,
		"summary": summary,
	})
}

func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	record, err := s.svc.PersonalRecord(r.Context(), r.URL.Query().Get("exercise"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	if record == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no working sets logged"})
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleWarmup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	target := 0.0
	if v := q.Get("target"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid target weight"})
			return
		}
		target = parsed
	}

	plan, err := s.svc.WarmupPlan(r.Context(), q.Get("exercise"), target)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if plan == nil {
		plan = []workout.PlannedWarmup{}
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handlePrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := s.svc.Programs(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if programs == nil {
		programs = []workout.Program{}
	}
	writeJSON(w, http.StatusOK, programs)
}

func (s *Server) handleExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := s.svc.Exercises(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if exercises == nil {
		exercises = []workout.Exercise{}
	}
	writeJSON(w, http.StatusOK, exercises)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, UserFromContext(r.Context()))
}

// writeError maps service errors to HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalid):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, storage.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		s.log.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func parseTimeRange(r *http.Request) (start, end time.Time, err error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" {
		// Default: last 90 days
		end = time.Now()
		start = end.AddDate(0, 0, -90)
		return
	}

	start, err = time.Parse(time.RFC3339, startStr)
	if err != nil {
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if endStr == "" {
		end = time.Now()
	} else {
		end, err = time.Parse(time.RFC3339, endStr)
		if err != nil {
			end, err = time.Parse("2006-01-02", endStr)
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			// End of day for date-only
			end = end.Add(24 * time.Hour)
		}
	}
	return
}
