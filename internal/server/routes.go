package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"marketai/internal/activity"
	"marketai/internal/completion"
	"marketai/internal/handlers"
	"marketai/internal/handlers/api"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(client completion.Client, log *activity.Log) {
	// Initialize handlers
	pageHandler := handlers.NewPageHandler(log, s.Cfg, s.Logger)
	probeHandler := handlers.NewProbeHandler(log)
	generateHandler := api.NewGenerateHandler(client, log, s.Cfg, s.Logger)
	activityHandler := api.NewActivityHandler(log, s.Logger)
	healthHandler := api.NewHealthHandler(s.Cfg)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Pages
	s.App.Get("/", pageHandler.Index)
	s.App.Get("/campaign", pageHandler.Campaign)
	s.App.Get("/pitch", pageHandler.Pitch)
	s.App.Get("/leadscore", pageHandler.LeadScore)
	s.App.Get("/debug-static", pageHandler.DebugStatic)

	// JSON API
	apiGroup := s.App.Group("/api")
	apiGroup.Post("/generate/campaign", generateHandler.Campaign)
	apiGroup.Post("/generate/pitch", generateHandler.Pitch)
	apiGroup.Post("/score/lead", generateHandler.LeadScore)
	apiGroup.Get("/activities", activityHandler.List)
	apiGroup.Get("/health", healthHandler.Health)
}
