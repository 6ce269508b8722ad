package llm

import (
	"context"
	"fmt"

	"github.com/ppiankov/labelcheck/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Explain generates a plain-language explanation of a verdict.
	// The explanation never feeds back into the verdict itself.
	Explain(ctx context.Context, req ExplainRequest) (*ExplainResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// ExplainRequest contains the input for verdict explanation
type ExplainRequest struct {
	// Verdict is the completed verification result to explain
	Verdict model.Verdict

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// ExplainResponse contains the LLM's explanation output
type ExplainResponse struct {
	// Text is the generated explanation
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// NewProvider constructs the configured provider, or (nil, nil) when the
// explainer is disabled
func NewProvider(cfg model.LLMConfig) (Provider, error) {
	switch cfg.Provider {
	case "":
		return nil, nil
	case "openai":
		return NewOpenAIProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
}

// BuildPrompt constructs the default prompt for verdict explanation.
// The model sees only the structured comparison results, never the claims or
// the raw label text, so it cannot second-guess the comparison.
func BuildPrompt(verdict model.Verdict) string {
	prompt := fmt.Sprintf(`You are explaining the result of an automated label verification. The verification compared claims entered on a form against text read from a product label photo.

CRITICAL RULES:
1. The verdict below is FINAL. Do not dispute, re-evaluate, or soften it.
2. Explain only what the per-field results say. Do not infer anything about the product itself.
3. If a field is "not_found", say the text could not be read reliably, not that the claim is wrong.
4. Keep it to 2-3 sentences in plain language.

Overall verdict: %s

Per-field results:
`, verdict.OverallStatus)

	for _, check := range verdict.Checks {
		line := fmt.Sprintf("- %s: %s", check.Field, check.Status)
		if check.DetectedValue != nil {
			line += fmt.Sprintf(" (detected: %v)", check.DetectedValue)
		}
		for _, note := range check.Notes {
			line += fmt.Sprintf("; %s", note)
		}
		prompt += line + "\n"
	}

	for _, note := range verdict.Notes {
		prompt += fmt.Sprintf("\nNote: %s", note)
	}

	return prompt
}

// Explain runs the provider against a verdict and packages the result for
// attachment. Returns nil when provider is nil so callers need no guard.
func Explain(ctx context.Context, provider Provider, cfg model.LLMConfig, verdict model.Verdict) *model.LLMExplanation {
	if provider == nil {
		return nil
	}

	resp, err := provider.Explain(ctx, ExplainRequest{
		Verdict:   verdict,
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
	})
	if err != nil {
		// The explanation is decorative; a provider failure never
		// fails the verification
		return &model.LLMExplanation{
			Enabled:  true,
			Provider: provider.Name(),
		}
	}

	return &model.LLMExplanation{
		Enabled:  true,
		Provider: provider.Name(),
		Model:    resp.Model,
		Text:     resp.Text,
	}
}
