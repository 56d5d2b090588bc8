package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiClient_Complete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-2.0-flash:generateContent"), r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		config := body["generationConfig"].(map[string]interface{})
		assert.Equal(t, "application/json", config["responseMimeType"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"medium\":\"email\"}"}]}}]}`))
	}))
	defer server.Close()

	client, err := NewGeminiClient(context.Background(), Config{APIKey: "test-key", BaseURL: server.URL}, nil)
	require.NoError(t, err)

	out, err := client.Complete(context.Background(), CompletionRequest{
		SystemPrompt: "extract",
		UserPrompt:   "newsletter",
		Model:        "gemini-2.0-flash",
		Temperature:  0.2,
		Schema:       map[string]interface{}{"type": "object"},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"medium":"email"}`, out)
}

func TestGeminiClient_Complete_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"code":401,"message":"API key not valid","status":"UNAUTHENTICATED"}}`))
	}))
	defer server.Close()

	client, err := NewGeminiClient(context.Background(), Config{APIKey: "bad-key", BaseURL: server.URL}, nil)
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), CompletionRequest{Model: "gemini-2.0-flash"})
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
}

func TestNewGeminiClient_MissingKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), Config{}, nil)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
