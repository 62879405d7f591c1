package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/telos-labs/recommend/internal/store"
)

const defaultRecommendLimit = 10

type recommendRequest struct {
	UserID string `json:"user_id"`
	Limit  *int   `json:"limit"`
}

func (s *Server) generateRecommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		writeDetail(w, "user_id is required", http.StatusBadRequest)
		return
	}
	limit := defaultRecommendLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	batch, err := s.synthesizer.Synthesize(r.Context(), req.UserID, limit)
	if err != nil {
		if errors.Is(err, store.ErrNoActivity) {
			writeDetail(w, "No activity found", http.StatusNotFound)
			return
		}
		writeDetail(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSONStatus(w, batch, http.StatusOK)
}

type recommendationPayload struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Text      string `json:"recommendation_text"`
	Priority  string `json:"priority"`
	Reason    string `json:"reason"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

func (s *Server) listRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	recs, err := s.store.ListRecommendations(r.Context(), userID)
	if err != nil {
		writeDetail(w, err.Error(), http.StatusInternalServerError)
		return
	}

	payloads := make([]recommendationPayload, 0, len(recs))
	for _, rec := range recs {
		payloads = append(payloads, recommendationPayload{
			ID:        rec.ID,
			UserID:    rec.UserID,
			Text:      rec.Text,
			Priority:  rec.Priority,
			Reason:    rec.Reason,
			Status:    string(rec.Status),
			CreatedAt: rec.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	writeJSONStatus(w, map[string]any{
		"user_id":         userID,
		"recommendations": payloads,
	}, http.StatusOK)
}
