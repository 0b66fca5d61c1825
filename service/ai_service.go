package service

import (
	"context"
	"fmt"

	"github.com/sanhariharan/invesplannner/domain"
)

// ModelProvider hands out the shared text model, initialising it if needed.
type ModelProvider interface {
	Get(ctx context.Context) (TextModel, error)
}

// AIService turns a serialized profile into advice and risk-analysis text.
type AIService struct {
	models ModelProvider
}

func NewAIService(models ModelProvider) *AIService {
	return &AIService{models: models}
}

// GenerateAdvice asks the model for investment advice for the given profile.
func (s *AIService) GenerateAdvice(ctx context.Context, profile string, maxLength int, temperature float32) (string, error) {
	prompt := fmt.Sprintf(`As a financial advisor, provide detailed investment advice for the following investor profile: %s.
Consider market conditions, risk tolerance, and long-term goals. Format the response with clear recommendations.

Start with a one-sentence summary on its own line. Put each recommendation on its own line starting with "- ".`,
		profile)

	return s.callLLM(ctx, "generate advice", prompt, maxLength, temperature)
}

// AnalyzeRisk asks the model for a risk analysis of the given profile.
func (s *AIService) AnalyzeRisk(ctx context.Context, profile string, maxLength int, temperature float32) (string, error) {
	prompt := fmt.Sprintf(`Analyze the risk profile and provide insights for: %s.
Consider age, investment horizon, and financial goals. Provide specific recommendations for risk management.`,
		profile)

	return s.callLLM(ctx, "analyze risk", prompt, maxLength, temperature)
}

func (s *AIService) callLLM(ctx context.Context, op, prompt string, maxLength int, temperature float32) (string, error) {
	model, err := s.models.Get(ctx)
	if err != nil {
		return "", &domain.CapabilityError{Op: op, Err: err}
	}

	text, err := model.Generate(ctx, prompt, maxLength, temperature)
	if err != nil {
		return "", &domain.CapabilityError{Op: op, Err: err}
	}
	return text, nil
}
