package model

// CheckStatus is the per-field outcome of a comparison
type CheckStatus string

const (
	StatusMatched  CheckStatus = "matched"   // Claim recoverable from the label text
	StatusMismatch CheckStatus = "mismatch"  // A plausible value was read and disagrees with the claim
	StatusNotFound CheckStatus = "not_found" // No usable candidate in the label text

	// Government-warning pseudo-field uses its own vocabulary
	StatusPresent CheckStatus = "present"
	StatusMissing CheckStatus = "missing"
)

// FieldCheck is the result of verifying a single field against the label text.
// DetectedValue is nil exactly when no candidate could be extracted; FormValue
// is nil only for the government-warning check, which has no user claim.
type FieldCheck struct {
	Field         Field       `json:"field"`
	Status        CheckStatus `json:"status"`
	FormValue     *string     `json:"formValue"`
	DetectedValue interface{} `json:"detectedValue"` // string for claims, bool for the warning, nil when absent
	Notes         []string    `json:"notes,omitempty"`
}

// IsWarning reports whether the check is the government-warning pseudo-field
func (c *FieldCheck) IsWarning() bool {
	return c.Field == FieldGovernmentWarning
}
