package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/telos-labs/recommend/internal/store"
)

const defaultActivityListLimit = 20

type createActivityRequest struct {
	UserID  string `json:"user_id"`
	Action  string `json:"action"`
	Context string `json:"context"`
}

type activityPayload struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Action    string  `json:"action"`
	Context   *string `json:"context"`
	Timestamp string  `json:"timestamp"`
}

func toActivityPayload(activity store.Activity) activityPayload {
	payload := activityPayload{
		ID:        activity.ID,
		UserID:    activity.UserID,
		Action:    activity.Action,
		Timestamp: activity.Timestamp.UTC().Format(time.RFC3339),
	}
	if activity.Context != "" {
		activityContext := activity.Context
		payload.Context = &activityContext
	}
	return payload
}

func (s *Server) createActivity(w http.ResponseWriter, r *http.Request) {
	var req createActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.Action) == "" {
		writeDetail(w, "user_id and action are required", http.StatusBadRequest)
		return
	}

	activity := store.Activity{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		Action:    req.Action,
		Context:   req.Context,
		Timestamp: time.Now().UTC(),
	}
	if err := s.store.AddActivity(r.Context(), activity); err != nil {
		writeDetail(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSONStatus(w, map[string]any{
		"success": true,
		"log":     toActivityPayload(activity),
	}, http.StatusOK)
}

func (s *Server) listActivities(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	limit := defaultActivityListLimit
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeDetail(w, "limit must be an integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	activities, err := s.store.ListActivities(r.Context(), userID, limit)
	if err != nil {
		writeDetail(w, err.Error(), http.StatusInternalServerError)
		return
	}

	payloads := make([]activityPayload, 0, len(activities))
	for _, activity := range activities {
		payloads = append(payloads, toActivityPayload(activity))
	}
	writeJSONStatus(w, map[string]any{
		"user_id":    userID,
		"activities": payloads,
	}, http.StatusOK)
}
