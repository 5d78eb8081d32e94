package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnthropicProvider_RequiresKey(t *testing.T) {
	_, err := NewAnthropicProvider(Config{})
	assert.Error(t, err)
}

func TestAnthropicProvider_Narrate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))

		var req anthropicRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, systemPrompt, req.System)
		assert.Equal(t, 300, req.MaxTokens)

		_, _ = w.Write([]byte(`{
			"model": "claude-test",
			"content": [{"type": "text", "text": "Green pool, 12 larvae, no fish."}],
			"usage": {"input_tokens": 40, "output_tokens": 12}
		}`))
	}))
	defer server.Close()

	p, err := NewAnthropicProvider(Config{APIKey: "test-key", BaseURL: server.URL + "/", Timeout: 5, MaxTokens: 300, StrictFacts: true})
	require.NoError(t, err)
	assert.Equal(t, "anthropic", p.Name())

	resp, err := p.Narrate(context.Background(), NarrateRequest{Graph: sampleGraph()})
	require.NoError(t, err)
	assert.Equal(t, "Green pool, 12 larvae, no fish.", resp.Text)
	assert.Equal(t, "claude-test", resp.Model)
	assert.Equal(t, 52, resp.TokensUsed)
}

func TestAnthropicProvider_Narrate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	}))
	defer server.Close()

	p, err := NewAnthropicProvider(Config{APIKey: "bad", BaseURL: server.URL, Timeout: 5})
	require.NoError(t, err)

	_, err = p.Narrate(context.Background(), NarrateRequest{Graph: sampleGraph()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication_error")
	assert.False(t, p.IsAvailable(context.Background()))
}

func TestAnthropicProvider_Narrate_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{malformed`))
	}))
	defer server.Close()

	p, err := NewAnthropicProvider(Config{APIKey: "k", BaseURL: server.URL, Timeout: 5})
	require.NoError(t, err)
	_, err = p.Narrate(context.Background(), NarrateRequest{Graph: sampleGraph()})
	assert.Error(t, err)
}
