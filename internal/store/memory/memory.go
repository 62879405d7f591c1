package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/telos-labs/recommend/internal/store"
)

// MemoryStore keeps all records in process. It backs tests and local
// development when no Postgres is configured.
type MemoryStore struct {
	mu              sync.RWMutex
	activities      map[string][]store.Activity
	recommendations map[string][]store.Recommendation
}

func New() *MemoryStore {
	return &MemoryStore{
		activities:      map[string][]store.Activity{},
		recommendations: map[string][]store.Recommendation{},
	}
}

func (m *MemoryStore) AddActivity(ctx context.Context, activity store.Activity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activities[activity.UserID] = append(m.activities[activity.UserID], activity)
	return nil
}

func (m *MemoryStore) ListActivities(ctx context.Context, userID string, limit int) ([]store.Activity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if limit <= 0 {
		return []store.Activity{}, nil
	}
	all := m.activities[userID]
	results := make([]store.Activity, len(all))
	copy(results, all)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Timestamp.After(results[j].Timestamp)
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (m *MemoryStore) AddRecommendations(ctx context.Context, recs []store.Recommendation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range recs {
		m.recommendations[rec.UserID] = append(m.recommendations[rec.UserID], rec)
	}
	return nil
}

func (m *MemoryStore) ListRecommendations(ctx context.Context, userID string) ([]store.Recommendation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	all := m.recommendations[userID]
	results := make([]store.Recommendation, len(all))
	copy(results, all)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}
