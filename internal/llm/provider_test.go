package llm

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/ppiankov/labelcheck/internal/model"
)

type fakeProvider struct {
	resp *ExplainResponse
	err  error
}

func (f *fakeProvider) Name() string                         { return "fake" }
func (f *fakeProvider) IsAvailable(ctx context.Context) bool { return true }
func (f *fakeProvider) Explain(ctx context.Context, req ExplainRequest) (*ExplainResponse, error) {
	return f.resp, f.err
}

func sampleVerdict() model.Verdict {
	form := "45%"
	return model.Verdict{
		OverallStatus: model.OverallMismatch,
		Checks: []model.FieldCheck{
			{Field: model.FieldAlcoholContent, Status: model.StatusMismatch, FormValue: &form, DetectedValue: "47%"},
			{Field: model.FieldGovernmentWarning, Status: model.StatusPresent, DetectedValue: true},
		},
		Notes: []string{"alcoholContent: detected 47% differs from claimed 45%"},
	}
}

func TestNewProvider_DisabledReturnsNil(t *testing.T) {
	provider, err := NewProvider(model.LLMConfig{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if provider != nil {
		t.Errorf("Expected nil provider when disabled, got %v", provider)
	}
}

func TestNewProvider_UnknownProvider(t *testing.T) {
	_, err := NewProvider(model.LLMConfig{Provider: "carrier-pigeon"})
	if err == nil {
		t.Error("Expected error for unknown provider")
	}
}

func TestNewProvider_OpenAIRequiresAPIKey(t *testing.T) {
	_, err := NewProvider(model.LLMConfig{Provider: "openai"})
	if err == nil {
		t.Error("Expected error when API key is missing")
	}
}

func TestBuildPrompt_IncludesVerdictAndChecks(t *testing.T) {
	prompt := BuildPrompt(sampleVerdict())

	if !strings.Contains(prompt, "Overall verdict: mismatch") {
		t.Error("Expected overall verdict in prompt")
	}
	if !strings.Contains(prompt, "alcoholContent: mismatch (detected: 47%)") {
		t.Errorf("Expected field result with detected value, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, "governmentWarning: present (detected: true)") {
		t.Errorf("Expected warning result in prompt, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Note: alcoholContent: detected 47% differs from claimed 45%") {
		t.Error("Expected verdict note in prompt")
	}
}

func TestExplain_NilProviderReturnsNil(t *testing.T) {
	if got := Explain(context.Background(), nil, model.LLMConfig{}, sampleVerdict()); got != nil {
		t.Errorf("Expected nil explanation without a provider, got %v", got)
	}
}

func TestExplain_AttachesProviderOutput(t *testing.T) {
	provider := &fakeProvider{resp: &ExplainResponse{Text: "The alcohol content on the label disagrees with the form.", Model: "fake-1"}}

	got := Explain(context.Background(), provider, model.LLMConfig{}, sampleVerdict())
	if got == nil {
		t.Fatal("Expected explanation, got nil")
	}
	if !got.Enabled || got.Provider != "fake" || got.Model != "fake-1" {
		t.Errorf("Unexpected explanation metadata: %+v", got)
	}
	if got.Text == "" {
		t.Error("Expected explanation text")
	}
}

func TestExplain_ProviderFailureIsNonFatal(t *testing.T) {
	provider := &fakeProvider{err: fmt.Errorf("api down")}

	got := Explain(context.Background(), provider, model.LLMConfig{}, sampleVerdict())
	if got == nil {
		t.Fatal("Expected explanation stub on provider failure, got nil")
	}
	if got.Text != "" {
		t.Errorf("Expected empty text on failure, got %q", got.Text)
	}
	if !got.Enabled || got.Provider != "fake" {
		t.Errorf("Unexpected stub metadata: %+v", got)
	}
}
