package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakbayph/lakbay-go/internal/domain/entities/visit"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/logging"
	"github.com/lakbayph/lakbay-go/pkg/config"
)

func testLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	logger, err := logging.NewChanneledLogger(nil)
	require.NoError(t, err)
	return logger
}

func testStats() visit.MapStats {
	return visit.MapStats{BeenThere: 5, StayedThere: 3, PassedBy: 2, NotVisited: 72, Total: 82}
}

func withCaptionConfig(t *testing.T, endpoint, apiKey string) {
	t.Helper()
	prevEndpoint, prevKey := config.CaptionEndpoint, config.CaptionAPIKey
	config.CaptionEndpoint = endpoint
	config.CaptionAPIKey = apiKey
	t.Cleanup(func() {
		config.CaptionEndpoint = prevEndpoint
		config.CaptionAPIKey = prevKey
	})
}

func TestGenerateCaptionWithoutAPIKey(t *testing.T) {
	withCaptionConfig(t, "http://invalid.test", "")
	svc := NewCaptionService(testLogger(t))

	caption := svc.GenerateCaption(context.Background(), "Juan", testStats())
	assert.Contains(t, caption, "Juan")
	assert.Contains(t, caption, "10 of 82")
	assert.Contains(t, caption, "12%")
}

func TestGenerateCaptionFallsBackWhenAllModelsFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Permanent failure so no retries drag the test out.
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	withCaptionConfig(t, server.URL, "test-key")
	svc := NewCaptionService(testLogger(t))

	caption := svc.GenerateCaption(context.Background(), "", testStats())
	assert.Contains(t, caption, "I explored 10 of 82")
}

func TestGenerateCaptionUsesFirstHealthyModel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"What a journey!"}}]}`))
	}))
	defer server.Close()

	withCaptionConfig(t, server.URL, "test-key")
	svc := NewCaptionService(testLogger(t))

	caption := svc.GenerateCaption(context.Background(), "Juan", testStats())
	assert.Equal(t, "What a journey!", caption)
}

func TestTemplateCaption(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"Juan explored 10 of 82 Philippine provinces so far. 12% of the archipelago and counting!",
		templateCaption("Juan", testStats()))
	assert.Equal(t,
		"I explored 10 of 82 Philippine provinces so far. 12% of the archipelago and counting!",
		templateCaption("", testStats()))
}
