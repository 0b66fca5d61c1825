package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanhariharan/invesplannner/domain"
)

type recordingModel struct {
	prompt      string
	maxLength   int
	temperature float32
	reply       string
	err         error
}

func (m *recordingModel) Generate(_ context.Context, prompt string, maxLength int, temperature float32) (string, error) {
	m.prompt = prompt
	m.maxLength = maxLength
	m.temperature = temperature
	return m.reply, m.err
}

type staticProvider struct {
	model TextModel
	err   error
}

func (p staticProvider) Get(context.Context) (TextModel, error) {
	return p.model, p.err
}

func TestAIService_GenerateAdvice(t *testing.T) {
	model := &recordingModel{reply: "Buy index funds."}
	svc := NewAIService(staticProvider{model: model})

	got, err := svc.GenerateAdvice(context.Background(), `{"age":45}`, AdviceMaxLength, AdviceTemperature)
	require.NoError(t, err)

	assert.Equal(t, "Buy index funds.", got)
	assert.Contains(t, model.prompt, "As a financial advisor")
	assert.Contains(t, model.prompt, `{"age":45}`)
	assert.Equal(t, AdviceMaxLength, model.maxLength)
	assert.InDelta(t, AdviceTemperature, model.temperature, 1e-6)
}

func TestAIService_AnalyzeRisk(t *testing.T) {
	model := &recordingModel{reply: "Low risk."}
	svc := NewAIService(staticProvider{model: model})

	got, err := svc.AnalyzeRisk(context.Background(), `{"age":70}`, RiskMaxLength, RiskTemperature)
	require.NoError(t, err)

	assert.Equal(t, "Low risk.", got)
	assert.Contains(t, model.prompt, "Analyze the risk profile")
	assert.Contains(t, model.prompt, `{"age":70}`)
	assert.Equal(t, RiskMaxLength, model.maxLength)
	assert.InDelta(t, RiskTemperature, model.temperature, 1e-6)
}

func TestAIService_EmptyReplyIsNotAnError(t *testing.T) {
	svc := NewAIService(staticProvider{model: &recordingModel{}})

	got, err := svc.GenerateAdvice(context.Background(), "{}", AdviceMaxLength, AdviceTemperature)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAIService_WrapsCapabilityErrors(t *testing.T) {
	generateErr := errors.New("quota exceeded")

	tests := []struct {
		name     string
		provider staticProvider
		wantErr  error
	}{
		{"model unavailable", staticProvider{err: domain.ErrModelNotConfigured}, domain.ErrModelNotConfigured},
		{"generation fails", staticProvider{model: &recordingModel{err: generateErr}}, generateErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAIService(tt.provider)

			_, err := svc.AnalyzeRisk(context.Background(), "{}", RiskMaxLength, RiskTemperature)

			var capErr *domain.CapabilityError
			require.ErrorAs(t, err, &capErr)
			assert.Equal(t, "analyze risk", capErr.Op)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
