package store

import (
	"context"
	"errors"
	"time"
)

// ErrNoActivity is returned when a user has no logged activity to analyze.
var ErrNoActivity = errors.New("no activity found")

// Activity is a single logged user action. Records are immutable once
// written; retrieval is always newest first.
type Activity struct {
	ID        string
	UserID    string
	Action    string
	Context   string
	Timestamp time.Time
}

// RecommendationStatus tracks what happened to a recommendation after it
// was generated. The service only ever writes StatusPending; the other
// transitions belong to external workflows.
type RecommendationStatus string

const (
	StatusPending   RecommendationStatus = "pending"
	StatusCompleted RecommendationStatus = "completed"
	StatusDismissed RecommendationStatus = "dismissed"
)

// Recommendation is one persisted model-generated suggestion. Priority and
// Reason are stored as the model produced them, empty when the model
// omitted the field.
type Recommendation struct {
	ID        string
	UserID    string
	Text      string
	Priority  string
	Reason    string
	Status    RecommendationStatus
	CreatedAt time.Time
}

type Store interface {
	AddActivity(ctx context.Context, activity Activity) error
	// ListActivities returns up to limit records for userID ordered by
	// timestamp descending. A limit of zero or less yields no records.
	ListActivities(ctx context.Context, userID string, limit int) ([]Activity, error)
	// AddRecommendations persists the batch atomically: either every
	// record is committed or none are.
	AddRecommendations(ctx context.Context, recs []Recommendation) error
	ListRecommendations(ctx context.Context, userID string) ([]Recommendation, error)
}
