package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiClient is the alternative summarization backend. It drives the same
// three-marker prompt contract through the Gemini API, so ParseSummary works
// on its output unchanged.
type GeminiClient struct {
	client *genai.Client
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

func (g *GeminiClient) Summarize(ctx context.Context, captions, modelID string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(userPromptPrefix + captions),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, modelID, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate summary with model %s: %w", modelID, err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from Gemini for model %s", modelID)
	}
	return text, nil
}
