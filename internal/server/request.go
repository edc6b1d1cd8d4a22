package server

import (
	"fmt"
	"html"
	"strings"
)

const (
	minDescriptionLen = 10
	maxDescriptionLen = 5000
	maxEstimatedUsers = 100_000_000
)

var validBudgets = map[string]bool{
	"low":    true,
	"medium": true,
	"high":   true,
}

// AnalysisRequest is the body shared by the analyze, iac, and narrative
// endpoints.
type AnalysisRequest struct {
	Description    string `json:"description"`
	EstimatedUsers int    `json:"estimated_users"`
	Budget         string `json:"budget"`
	Region         string `json:"region"`
	AdvancedGuide  *bool  `json:"advanced_guide,omitempty"`
}

// Validate sanitizes the description and checks every field. The description
// is HTML-escaped and has its whitespace collapsed before the length check.
func (r *AnalysisRequest) Validate() error {
	desc := strings.TrimSpace(r.Description)
	if len(desc) > maxDescriptionLen {
		return fmt.Errorf("description must be at most %d characters", maxDescriptionLen)
	}
	desc = html.EscapeString(desc)
	desc = strings.Join(strings.Fields(desc), " ")
	if len(desc) < minDescriptionLen {
		return fmt.Errorf("description must be at least %d characters", minDescriptionLen)
	}
	r.Description = desc

	if r.EstimatedUsers < 1 || r.EstimatedUsers > maxEstimatedUsers {
		return fmt.Errorf("estimated_users must be between 1 and %d", maxEstimatedUsers)
	}

	if !validBudgets[r.Budget] {
		return fmt.Errorf("budget must be one of low, medium, high")
	}

	if r.Region == "" {
		r.Region = "us-east-1"
	}

	return nil
}
