package models

import "time"

// UseCase identifies one of the generation flows.
type UseCase string

// Use case constants
const (
	UseCaseCampaign  UseCase = "campaign"
	UseCasePitch     UseCase = "pitch"
	UseCaseLeadScore UseCase = "leadscore"
)

// UseCases lists every supported use case in display order.
var UseCases = []UseCase{UseCaseCampaign, UseCasePitch, UseCaseLeadScore}

// Valid returns true if u is a known use case.
func (u UseCase) Valid() bool {
	switch u {
	case UseCaseCampaign, UseCasePitch, UseCaseLeadScore:
		return true
	}
	return false
}

// Activity is one logged, successful generation or scoring action.
type Activity struct {
	ID        int64          `json:"id"`
	Type      UseCase        `json:"type"`
	Data      map[string]any `json:"data"`
	Preview   string         `json:"preview"`
	Timestamp time.Time      `json:"timestamp"`
}
