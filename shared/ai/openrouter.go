package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// OpenRouterClient talks to the OpenRouter chat-completions endpoint.
type OpenRouterClient struct {
	apiKey   string
	baseURL  string
	referer  string
	appTitle string
	client   *http.Client
}

// OpenRouterOptions carries the identification headers OpenRouter asks
// clients to send alongside the bearer key.
type OpenRouterOptions struct {
	BaseURL  string // default https://openrouter.ai/api/v1
	Referer  string
	AppTitle string
}

func NewOpenRouterClient(apiKey string, opts OpenRouterOptions) *OpenRouterClient {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://openrouter.ai/api/v1"
	}
	return &OpenRouterClient{
		apiKey:   apiKey,
		baseURL:  strings.TrimSuffix(opts.BaseURL, "/"),
		referer:  opts.Referer,
		appTitle: opts.AppTitle,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Summarize sends the fixed two-message conversation and returns the raw
// model text. One request, no streaming, no retries; the caller owns staying
// within the model's context window.
func (c *OpenRouterClient) Summarize(ctx context.Context, captions, modelID string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: modelID,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPromptPrefix + captions},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if c.referer != "" {
		req.Header.Set("HTTP-Referer", c.referer)
	}
	if c.appTitle != "" {
		req.Header.Set("X-Title", c.appTitle)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call OpenRouter: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read OpenRouter response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OpenRouter returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("failed to decode OpenRouter response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("OpenRouter response for model %s contained no choices", modelID)
	}

	return completion.Choices[0].Message.Content, nil
}
