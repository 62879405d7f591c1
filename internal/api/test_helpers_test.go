package api

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/telos-labs/recommend/internal/config"
	"github.com/telos-labs/recommend/internal/recommend"
	"github.com/telos-labs/recommend/internal/store"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) AddActivity(ctx context.Context, activity store.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockStore) ListActivities(ctx context.Context, userID string, limit int) ([]store.Activity, error) {
	args := m.Called(ctx, userID, limit)
	var result []store.Activity
	if value := args.Get(0); value != nil {
		result = value.([]store.Activity)
	}
	return result, args.Error(1)
}

func (m *MockStore) AddRecommendations(ctx context.Context, recs []store.Recommendation) error {
	args := m.Called(ctx, recs)
	return args.Error(0)
}

func (m *MockStore) ListRecommendations(ctx context.Context, userID string) ([]store.Recommendation, error) {
	args := m.Called(ctx, userID)
	var result []store.Recommendation
	if value := args.Get(0); value != nil {
		result = value.([]store.Recommendation)
	}
	return result, args.Error(1)
}

type MockSynthesizer struct {
	mock.Mock
}

func (m *MockSynthesizer) Synthesize(ctx context.Context, userID string, limit int) (*recommend.Batch, error) {
	args := m.Called(ctx, userID, limit)
	if value := args.Get(0); value != nil {
		return value.(*recommend.Batch), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestServer(t *testing.T, st store.Store, synthesizer Synthesizer, cfg config.Config) *httptest.Server {
	t.Helper()
	server := NewServer(st, synthesizer, cfg)
	return httptest.NewServer(server.Router())
}
