package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/gr-siqueira/sport-agent/pkg/domain"
	"github.com/gr-siqueira/sport-agent/pkg/graph"
	"github.com/gr-siqueira/sport-agent/pkg/scheduler"
)

// preferencesRequest is the body of configure and update requests
type preferencesRequest struct {
	UserID       string   `json:"user_id"`
	Teams        []string `json:"teams"`
	Players      []string `json:"players"`
	Leagues      []string `json:"leagues"`
	DeliveryTime string   `json:"delivery_time"`
	Timezone     string   `json:"timezone"`
}

func (p preferencesRequest) toDomain() domain.Preferences {
	return domain.Preferences{
		UserID:       p.UserID,
		Teams:        p.Teams,
		Players:      p.Players,
		Leagues:      p.Leagues,
		DeliveryTime: p.DeliveryTime,
		Timezone:     p.Timezone,
	}
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "healthy",
		"service": "sport-agent",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// configureHandler stores preferences and schedules the daily digest
func (s *Server) configureHandler(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	userID, err := s.digests.Configure(r.Context(), req.toDomain())
	if err != nil {
		lgr.Printf("[WARN] failed to configure interests: %v", err)
		renderError(w, r, err, errorCode(err))
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{
		"status":  "saved",
		"user_id": userID,
		"message": "Preferences saved and digest scheduled",
	})
}

// generateHandler runs the digest of the user immediately
func (s *Server) generateHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		renderError(w, r, errors.New("user_id is required"), http.StatusBadRequest)
		return
	}

	res, err := s.digests.GenerateNow(r.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			renderError(w, r, errors.New("user not found, please configure interests first"), http.StatusNotFound)
			return
		}
		lgr.Printf("[ERROR] failed to generate digest for %s: %v", req.UserID, err)
		renderError(w, r, err, errorCode(err))
		return
	}

	renderJSON(w, r, http.StatusOK, res)
}

// getPreferencesHandler returns stored preferences
func (s *Server) getPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	prefs, err := s.digests.GetPreferences(r.Context(), r.PathValue("user_id"))
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, prefs)
}

// updatePreferencesHandler replaces preferences of an existing user
func (s *Server) updatePreferencesHandler(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	if _, err := s.digests.UpdatePreferences(r.Context(), r.PathValue("user_id"), req.toDomain()); err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{
		"status":  "updated",
		"message": "Preferences updated and digest rescheduled",
	})
}

// deletePreferencesHandler removes the user and unschedules the daily digest
func (s *Server) deletePreferencesHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.digests.DeletePreferences(r.Context(), r.PathValue("user_id")); err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]string{
		"status":  "deleted",
		"message": "User preferences deleted and digest unscheduled",
	})
}

// historyHandler returns latest digests of the user
func (s *Server) historyHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 1 {
			renderError(w, r, fmt.Errorf("invalid limit %q", limitStr), http.StatusBadRequest)
			return
		}
		limit = l
	}

	history, err := s.digests.History(r.Context(), userID, limit)
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	if history == nil {
		history = []domain.HistoryEntry{}
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{"user_id": userID, "history": history})
}

// scheduledJobsHandler lists daily digest jobs
func (s *Server) scheduledJobsHandler(w http.ResponseWriter, r *http.Request) {
	jobs := s.digests.ScheduledJobs()
	if jobs == nil {
		jobs = []scheduler.Job{}
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"jobs": jobs})
}

// errorCode maps service errors to http status codes
func errorCode(err error) int {
	var runErr *graph.RunError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidSchedule):
		return http.StatusBadRequest
	case errors.As(err, &runErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
