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

// AnthropicProvider implements the Provider interface for Anthropic Claude models
type AnthropicProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	config     Config
}

var _ Provider = (*AnthropicProvider)(nil)

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Messages    []anthropicMessage `json:"messages"`
	System      string             `json:"system,omitempty"`
	Temperature float64            `json:"temperature,omitempty"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Model string `json:"model"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

type anthropicError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

const (
	anthropicVersion      = "2023-06-01"
	anthropicDefaultModel = "claude-3-5-haiku-latest"
)

// NewAnthropicProvider creates a new Anthropic provider
func NewAnthropicProvider(config Config) (*AnthropicProvider, error) {
	if config.APIKey == "" {
		return nil, errors.New("Anthropic API key is required")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "https://api.anthropic.com"
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &AnthropicProvider{
		apiKey:     config.APIKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(config.HTTPProxy, config.HTTPSProxy, config.NoProxy),
			},
		},
		config:     config,
	}, nil
}

func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

// IsAvailable sends a minimal message as a credentials check
func (p *AnthropicProvider) IsAvailable(ctx context.Context) bool {
	_, err := p.makeRequest(ctx, anthropicRequest{
		Model:     anthropicDefaultModel,
		MaxTokens: 1,
		Messages:  []anthropicMessage{{Role: "user", Content: "ping"}},
	})
	return err == nil
}

// Narrate generates a note using the Messages API
func (p *AnthropicProvider) Narrate(ctx context.Context, req NarrateRequest) (*NarrateResponse, error) {
	prompt, modelName, maxTokens := resolve(req, p.config, anthropicDefaultModel)

	resp, err := p.makeRequest(ctx, anthropicRequest{
		Model:       modelName,
		MaxTokens:   maxTokens,
		System:      systemPrompt,
		Messages:    []anthropicMessage{{Role: "user", Content: prompt}},
		Temperature: 0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("Anthropic API error: %w", err)
	}

	var text strings.Builder
	for _, c := range resp.Content {
		if c.Type == "text" {
			text.WriteString(c.Text)
		}
	}
	if text.Len() == 0 {
		return nil, errors.New("no content in Anthropic response")
	}

	narrative := strings.TrimSpace(text.String())
	if err := checkFacts(p.config, narrative, prompt); err != nil {
		return nil, err
	}

	return &NarrateResponse{
		Text:       narrative,
		Model:      resp.Model,
		TokensUsed: resp.Usage.InputTokens + resp.Usage.OutputTokens,
	}, nil
}

func (p *AnthropicProvider) makeRequest(ctx context.Context, apiReq anthropicRequest) (*anthropicResponse, error) {
	body, err := json.Marshal(apiReq)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", p.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

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
		var apiErr anthropicError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("API error (%d): %s - %s", httpResp.StatusCode, apiErr.Error.Type, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("API error (%d): %s", httpResp.StatusCode, string(respBody))
	}

	var resp anthropicResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &resp, nil
}
