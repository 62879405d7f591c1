package recommend

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/telos-labs/recommend/internal/llm"
	"github.com/telos-labs/recommend/internal/observability"
	"github.com/telos-labs/recommend/internal/store"
)

// SynthesisError wraps whatever stopped a synthesis after the activity
// window was read: a completion failure or malformed extraction state.
type SynthesisError struct {
	Reason string
	Err    error
}

func (e *SynthesisError) Error() string {
	if e.Err != nil {
		return "recommendation synthesis failed: " + e.Err.Error()
	}
	return "recommendation synthesis failed: " + e.Reason
}

func (e *SynthesisError) Unwrap() error { return e.Err }

// Batch is the caller-facing result of one synthesis. Recommendations
// holds the items exactly as extracted, in the order they were persisted.
type Batch struct {
	UserID            string `json:"user_id"`
	Recommendations   []Item `json:"recommendations"`
	AnalysisTimestamp string `json:"analysis_timestamp"`
}

// Service turns a user's recent activity into persisted recommendations.
// One instance is constructed at startup and shared across requests.
type Service struct {
	store    store.Store
	provider llm.Provider
}

func NewService(st store.Store, provider llm.Provider) *Service {
	return &Service{store: st, provider: provider}
}

// Synthesize reads up to limit recent activities for userID, asks the
// completion provider for recommendations and persists the batch. It
// returns store.ErrNoActivity when there is nothing to analyze, a
// *SynthesisError when the completion call fails, and the store's error
// verbatim when persistence fails. Concurrent calls for the same user are
// not serialized; each produces its own batch.
func (s *Service) Synthesize(ctx context.Context, userID string, limit int) (*Batch, error) {
	activities, err := s.store.ListActivities(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		return nil, store.ErrNoActivity
	}

	prompt := BuildPrompt(userID, activities)
	messages := []llm.Message{
		{Role: "system", Content: SystemPrompt},
		{Role: "user", Content: prompt},
	}

	started := time.Now()
	raw, err := s.provider.Generate(ctx, messages)
	observability.ObserveCompletion(time.Since(started), err == nil)
	if err != nil {
		observability.RecordSynthesis("completion_failed")
		return nil, &SynthesisError{Err: err}
	}

	extraction := Extract(raw)
	if extraction.Fallback {
		observability.RecordExtractionFallback()
	}
	if extraction.Recommendations == nil {
		observability.RecordSynthesis("invalid_structure")
		return nil, &SynthesisError{Reason: "invalid AI JSON structure"}
	}

	now := time.Now().UTC()
	recs := make([]store.Recommendation, 0, len(extraction.Recommendations))
	for _, item := range extraction.Recommendations {
		recs = append(recs, store.Recommendation{
			ID:        uuid.New().String(),
			UserID:    userID,
			Text:      item.Action,
			Priority:  item.Priority,
			Reason:    item.Reason,
			Status:    store.StatusPending,
			CreatedAt: now,
		})
	}
	if err := s.store.AddRecommendations(ctx, recs); err != nil {
		observability.RecordSynthesis("persist_failed")
		return nil, err
	}

	observability.RecordSynthesis("ok")
	return &Batch{
		UserID:            userID,
		Recommendations:   extraction.Recommendations,
		AnalysisTimestamp: now.Format(time.RFC3339),
	}, nil
}
