package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Gleipnir-Technology/nidus-extract/internal/util"
	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements the Provider interface for OpenAI models
type OpenAIProvider struct {
	client *openai.Client
	config Config
}

var _ Provider = (*OpenAIProvider)(nil)

// NewOpenAIProvider creates a new OpenAI provider. BaseURL may point at any
// OpenAI-compatible endpoint.
func NewOpenAIProvider(config Config) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{
		Transport: &http.Transport{
			Proxy: util.NewProxyFunc(config.HTTPProxy, config.HTTPSProxy, config.NoProxy),
		},
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable lists models as a lightweight credentials check
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	_, err := p.client.ListModels(ctx)
	return err == nil
}

// Narrate generates a note using the Chat Completions API
func (p *OpenAIProvider) Narrate(ctx context.Context, req NarrateRequest) (*NarrateResponse, error) {
	prompt, modelName, maxTokens := resolve(req, p.config, openai.GPT4oMini)

	timeout := time.Duration(p.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("no response from OpenAI")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := checkFacts(p.config, text, prompt); err != nil {
		return nil, err
	}

	return &NarrateResponse{
		Text:       text,
		Model:      modelName,
		TokensUsed: resp.Usage.TotalTokens,
	}, nil
}
