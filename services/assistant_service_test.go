package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/services"
)

func TestAssistantSuggest(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.NotContains(t, r.URL.String(), "test-key", "the key must never ride in the URL, it leaks into error logs")

		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "Espresso Cup")

		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Start every morning right."}]}}]}`))
	}))
	t.Cleanup(server.Close)

	assistant := services.NewAssistantService(server.URL, "test-key", "gemini-2.5-flash", 5*time.Second)

	suggestion := assistant.Suggest(context.Background(), "Espresso Cup")
	assert.Equal(t, "Start every morning right.", suggestion)
}

func TestAssistantFallsBackOnError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	assistant := services.NewAssistantService(server.URL, "test-key", "gemini-2.5-flash", 5*time.Second)
	assert.Equal(t, services.FallbackSuggestion, assistant.Suggest(context.Background(), "Espresso Cup"))
}

func TestAssistantFallsBackWithoutAPIKey(t *testing.T) {
	t.Parallel()

	assistant := services.NewAssistantService("http://localhost:0", "", "gemini-2.5-flash", time.Second)
	assert.Equal(t, services.FallbackSuggestion, assistant.Suggest(context.Background(), "Espresso Cup"))
}

func TestAssistantFallsBackOnEmptyCandidates(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	t.Cleanup(server.Close)

	assistant := services.NewAssistantService(server.URL, "test-key", "gemini-2.5-flash", 5*time.Second)
	assert.Equal(t, services.FallbackSuggestion, assistant.Suggest(context.Background(), "Espresso Cup"))
}
