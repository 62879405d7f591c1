package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/telos-labs/recommend/internal/config"
	"github.com/telos-labs/recommend/internal/llm"
	"github.com/telos-labs/recommend/internal/recommend"
	"github.com/telos-labs/recommend/internal/store"
)

func TestGenerateRecommendations(t *testing.T) {
	batch := &recommend.Batch{
		UserID: "u-1",
		Recommendations: []recommend.Item{
			{Action: "Follow up with ABC Corp", Priority: "High", Reason: "open proposal"},
		},
		AnalysisTimestamp: "2026-03-14T12:00:00Z",
	}
	synthMock := &MockSynthesizer{}
	synthMock.On("Synthesize", mock.Anything, "u-1", 5).Return(batch, nil).Once()

	server := newTestServer(t, &MockStore{}, synthMock, config.Config{})
	defer server.Close()

	body := bytes.NewBufferString(`{"user_id":"u-1","limit":5}`)
	resp, err := http.Post(server.URL+"/api/recommend", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload recommend.Batch
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "u-1", payload.UserID)
	require.Len(t, payload.Recommendations, 1)
	require.Equal(t, "Follow up with ABC Corp", payload.Recommendations[0].Action)
	synthMock.AssertExpectations(t)
}

func TestGenerateRecommendations_DefaultLimit(t *testing.T) {
	synthMock := &MockSynthesizer{}
	synthMock.On("Synthesize", mock.Anything, "u-1", 10).
		Return(&recommend.Batch{UserID: "u-1", Recommendations: []recommend.Item{}}, nil).Once()

	server := newTestServer(t, &MockStore{}, synthMock, config.Config{})
	defer server.Close()

	body := bytes.NewBufferString(`{"user_id":"u-1"}`)
	resp, err := http.Post(server.URL+"/api/recommend", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	synthMock.AssertExpectations(t)
}

func TestGenerateRecommendations_NoActivity(t *testing.T) {
	synthMock := &MockSynthesizer{}
	synthMock.On("Synthesize", mock.Anything, "u-1", 10).Return(nil, store.ErrNoActivity).Once()

	server := newTestServer(t, &MockStore{}, synthMock, config.Config{})
	defer server.Close()

	body := bytes.NewBufferString(`{"user_id":"u-1"}`)
	resp, err := http.Post(server.URL+"/api/recommend", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "No activity found", payload["detail"])
}

func TestGenerateRecommendations_SynthesisFailure(t *testing.T) {
	synthErr := &recommend.SynthesisError{Err: llm.TimeoutError{Err: errors.New("deadline exceeded")}}
	synthMock := &MockSynthesizer{}
	synthMock.On("Synthesize", mock.Anything, "u-1", 10).Return(nil, synthErr).Once()

	server := newTestServer(t, &MockStore{}, synthMock, config.Config{})
	defer server.Close()

	body := bytes.NewBufferString(`{"user_id":"u-1"}`)
	resp, err := http.Post(server.URL+"/api/recommend", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Contains(t, payload["detail"], "recommendation synthesis failed")
}

func TestGenerateRecommendations_MissingUserID(t *testing.T) {
	server := newTestServer(t, &MockStore{}, &MockSynthesizer{}, config.Config{})
	defer server.Close()

	body := bytes.NewBufferString(`{"limit":5}`)
	resp, err := http.Post(server.URL+"/api/recommend", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListRecommendations(t *testing.T) {
	created := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	storeMock := &MockStore{}
	storeMock.On("ListRecommendations", mock.Anything, "u-1").Return([]store.Recommendation{
		{ID: "r-1", UserID: "u-1", Text: "Follow up", Priority: "High", Reason: "open proposal", Status: store.StatusPending, CreatedAt: created},
	}, nil).Once()

	server := newTestServer(t, storeMock, &MockSynthesizer{}, config.Config{})
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/recommendations/u-1")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		UserID          string `json:"user_id"`
		Recommendations []struct {
			Text      string `json:"recommendation_text"`
			Status    string `json:"status"`
			CreatedAt string `json:"created_at"`
		} `json:"recommendations"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "u-1", payload.UserID)
	require.Len(t, payload.Recommendations, 1)
	require.Equal(t, "Follow up", payload.Recommendations[0].Text)
	require.Equal(t, "pending", payload.Recommendations[0].Status)
	require.Equal(t, "2026-03-14T12:00:00Z", payload.Recommendations[0].CreatedAt)
	storeMock.AssertExpectations(t)
}

func TestListRecommendations_StoreError(t *testing.T) {
	storeMock := &MockStore{}
	storeMock.On("ListRecommendations", mock.Anything, "u-1").Return(nil, errors.New("db unavailable")).Once()

	server := newTestServer(t, storeMock, &MockSynthesizer{}, config.Config{})
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/recommendations/u-1")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
