// Package prompt turns normalized form fields into the instruction text sent
// to the completion service.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"marketai/internal/models"
)

// ErrUnknownUseCase is returned when no template exists for a use case.
var ErrUnknownUseCase = errors.New("unknown use case")

// Fields holds canonical field values, already normalized from the request.
type Fields map[string]string

// Value returns the named field, or fallback when it is missing or blank.
func (f Fields) Value(name, fallback string) string {
	if v, ok := f[name]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

// Build renders the prompt for a use case. It is pure: the same fields always
// produce the same text.
func Build(useCase models.UseCase, fields Fields) (string, error) {
	switch useCase {
	case models.UseCaseCampaign:
		return Campaign(fields), nil
	case models.UseCasePitch:
		return Pitch(fields), nil
	case models.UseCaseLeadScore:
		return LeadScore(fields), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownUseCase, useCase)
	}
}

// Campaign renders the marketing campaign prompt.
func Campaign(f Fields) string {
	return fmt.Sprintf(campaignTemplate,
		f.Value("product", ""),
		f.Value("audience", ""),
		f.Value("platforms", ""),
		f.Value("tone", "professional"),
		f.Value("goal", "increase awareness"),
	)
}

// Pitch renders the sales pitch prompt.
func Pitch(f Fields) string {
	return fmt.Sprintf(pitchTemplate,
		f.Value("product", ""),
		f.Value("features", "Not specified"),
		f.Value("customer", ""),
		f.Value("industry", ""),
		f.Value("company_size", ""),
		f.Value("challenges", ""),
		f.Value("goals", ""),
		f.Value("competitors", "Not specified"),
		f.Value("pitch_type", "sales pitch"),
		f.Value("tone", "professional"),
		f.Value("notes", "None"),
		f.Value("company_size", "their company size"),
		f.Value("competitors", "competitors"),
		f.Value("features", "the features provided"),
		f.Value("challenges", "the customer challenges"),
		f.Value("pitch_type", "follow-up"),
		f.Value("pitch_type", "message"),
	)
}

// LeadScore renders the lead qualification prompt.
func LeadScore(f Fields) string {
	return fmt.Sprintf(leadScoreTemplate,
		f.Value("name", ""),
		f.Value("company", ""),
		f.Value("role", ""),
		f.Value("budget", ""),
		f.Value("need", ""),
		f.Value("urgency", ""),
		f.Value("timeline", ""),
		f.Value("decision_makers", ""),
		f.Value("challenges", ""),
	)
}
