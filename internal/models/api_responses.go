package models

import (
	"time"

	"marketai/internal/render"
)

// GenerateResponse is returned by the campaign and pitch endpoints.
type GenerateResponse struct {
	Success bool   `json:"success"`
	Result  string `json:"result"`
	Raw     string `json:"raw"`
}

// LeadScoreResponse is returned by the lead scoring endpoint.
type LeadScoreResponse struct {
	Success bool   `json:"success"`
	Result  string `json:"result"`
	Score   int    `json:"score"`
	Raw     string `json:"raw"`

	Qualification render.Qualification `json:"qualification"`
}

// FailureResponse reports a failed generation.
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HealthResponse describes the running service.
type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	AIModel   string    `json:"ai_model"`
	Timestamp time.Time `json:"timestamp"`
}
