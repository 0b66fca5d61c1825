package service

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/sanhariharan/invesplannner/domain"
)

const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiModel generates text through the Gemini API.
type GeminiModel struct {
	client *genai.Client
	name   string
}

// NewGeminiLoader returns a loader that creates the Gemini client on first
// use. Without an API key the loader fails with ErrModelNotConfigured.
func NewGeminiLoader(apiKey, modelName string) ModelLoader {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return func(ctx context.Context) (TextModel, error) {
		if apiKey == "" {
			return nil, domain.ErrModelNotConfigured
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("creating gemini client: %w", err)
		}
		return &GeminiModel{client: client, name: modelName}, nil
	}
}

func (g *GeminiModel) Generate(ctx context.Context, prompt string, maxLength int, temperature float32) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.name, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		MaxOutputTokens: int32(maxLength),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrEmptyResponse
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String(), nil
}
