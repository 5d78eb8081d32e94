package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Gleipnir-Technology/nidus-extract/internal/util"
)

// OllamaProvider runs narratives on a local Ollama server, for offices that
// cannot send transcripts off site.
type OllamaProvider struct {
	baseURL    string
	httpClient *http.Client
	config     Config
}

var _ Provider = (*OllamaProvider)(nil)

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	System  string        `json:"system,omitempty"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"` // Max tokens
}

type ollamaResponse struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	Done            bool   `json:"done"`
	PromptEvalCount int    `json:"prompt_eval_count,omitempty"`
	EvalCount       int    `json:"eval_count,omitempty"`
}

type ollamaError struct {
	Error string `json:"error"`
}

// NewOllamaProvider creates a new Ollama provider
func NewOllamaProvider(config Config) (*OllamaProvider, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	return &OllamaProvider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(config.HTTPProxy, config.HTTPSProxy, config.NoProxy),
			},
		},
		config: config,
	}, nil
}

func (p *OllamaProvider) Name() string {
	return "ollama"
}

// IsAvailable checks that the server answers the model listing endpoint
func (p *OllamaProvider) IsAvailable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode == http.StatusOK
}

// Narrate generates a note with a local model
func (p *OllamaProvider) Narrate(ctx context.Context, req NarrateRequest) (*NarrateResponse, error) {
	prompt, modelName, maxTokens := resolve(req, p.config, "")
	if modelName == "" {
		return nil, errors.New("ollama model must be specified (e.g., llama3.1:8b, mistral)")
	}

	resp, err := p.makeRequest(ctx, ollamaRequest{
		Model:  modelName,
		Prompt: prompt,
		System: systemPrompt,
		Options: ollamaOptions{
			Temperature: 0.2,
			NumPredict:  maxTokens,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("ollama API error: %w", err)
	}

	text := strings.TrimSpace(resp.Response)
	if err := checkFacts(p.config, text, prompt); err != nil {
		return nil, err
	}

	// Some models report no counts; estimate about 4 characters per token
	tokensUsed := resp.PromptEvalCount + resp.EvalCount
	if tokensUsed == 0 {
		tokensUsed = (len(prompt) + len(text)) / 4
	}

	return &NarrateResponse{
		Text:       text,
		Model:      resp.Model,
		TokensUsed: tokensUsed,
	}, nil
}

func (p *OllamaProvider) makeRequest(ctx context.Context, apiReq ollamaRequest) (*ollamaResponse, error) {
	body, err := json.Marshal(apiReq)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		var apiErr ollamaError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("API error (%d): %s", httpResp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("API error (%d): %s", httpResp.StatusCode, string(respBody))
	}

	var resp ollamaResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &resp, nil
}
