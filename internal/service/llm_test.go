package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"crm-backend/internal/config"
	apperrors "crm-backend/internal/errors"
	"crm-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIClientComplete(t *testing.T) {
	var got map[string]interface{}
	var auth, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Hello there  "},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	client := service.NewOpenAIClient(&config.Config{
		LLMBaseURL:     server.URL + "/v1/",
		LLMAPIKey:      "sk-test",
		LLMModel:       "gpt-4o-mini",
		LLMTemperature: 0.3,
		LLMMaxTokens:   800,
	})

	reply, err := client.Complete(context.Background(), []service.ChatMessage{
		{Role: "system", Content: "be brief"},
		{Role: "user", Content: "hi"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Hello there", reply)
	assert.Equal(t, "Bearer sk-test", auth)
	assert.Equal(t, "/v1/chat/completions", path)
	assert.Equal(t, "gpt-4o-mini", got["model"])
	assert.Equal(t, 0.3, got["temperature"])
	assert.Equal(t, float64(800), got["max_tokens"])
	assert.Len(t, got["messages"], 2)
}

func TestOpenAIClientErrors(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		client := service.NewOpenAIClient(&config.Config{})
		assert.False(t, client.Configured())

		_, err := client.Complete(context.Background(), nil)
		assert.ErrorIs(t, err, apperrors.ErrLLMNotConfigured)
	})

	cases := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"http error", http.StatusTooManyRequests, `{"error":{"message":"rate limited"}}`, "status=429"},
		{"provider error", http.StatusOK, `{"error":{"message":"model overloaded"}}`, "model overloaded"},
		{"no choices", http.StatusOK, `{"choices":[]}`, "empty choices"},
		{"bad json", http.StatusOK, `not json`, "failed to decode"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := service.NewOpenAIClient(&config.Config{LLMBaseURL: server.URL, LLMAPIKey: "sk-test"})
			_, err := client.Complete(context.Background(), []service.ChatMessage{{Role: "user", Content: "hi"}})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}
