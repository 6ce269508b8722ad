package model

import "time"

// OverallStatus is the aggregate outcome of a verification
type OverallStatus string

const (
	OverallMatch      OverallStatus = "match"      // Every claim matched
	OverallMismatch   OverallStatus = "mismatch"   // At least one claim contradicted by the label
	OverallUnreadable OverallStatus = "unreadable" // At least one claim unrecoverable from the text
)

// Verdict is the complete result of one verification.
// Built once by the orchestrator and never mutated afterwards.
type Verdict struct {
	OverallStatus OverallStatus `json:"overallStatus"`
	Checks        []FieldCheck  `json:"checks"`
	Notes         []string      `json:"notes"`
	VerifiedAt    time.Time     `json:"verifiedAt"`

	LLM *LLMExplanation `json:"llm,omitempty"` // Optional LLM explanation (separate, never affects status)
}

// LLMExplanation contains an optional LLM-generated explanation of the verdict
// CRITICAL: This never affects the verdict and is clearly separated
type LLMExplanation struct {
	Enabled  bool   `json:"enabled"`
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	Text     string `json:"text,omitempty"`
}
