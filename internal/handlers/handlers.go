package handlers

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"marketai/internal/activity"
	"marketai/internal/config"
	"marketai/internal/middleware"
	"marketai/internal/models"
)

// PageHandler renders the HTML pages.
type PageHandler struct {
	log    *activity.Log
	cfg    *config.Config
	logger *zap.Logger
}

// NewPageHandler creates a new page handler.
func NewPageHandler(log *activity.Log, cfg *config.Config, logger *zap.Logger) *PageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageHandler{log: log, cfg: cfg, logger: logger}
}

// Index renders the dashboard.
func (h *PageHandler) Index(c fiber.Ctx) error {
	return h.render(c, "index", "Dashboard")
}

// Campaign renders the campaign generator form.
func (h *PageHandler) Campaign(c fiber.Ctx) error {
	return h.render(c, "campaign", "Campaign Generator")
}

// Pitch renders the sales pitch form.
func (h *PageHandler) Pitch(c fiber.Ctx) error {
	return h.render(c, "pitch", "Sales Pitch")
}

// LeadScore renders the lead qualification form.
func (h *PageHandler) LeadScore(c fiber.Ctx) error {
	return h.render(c, "leadscore", "Lead Scoring")
}

// DebugStatic renders a page that checks the static assets load.
func (h *PageHandler) DebugStatic(c fiber.Ctx) error {
	return c.Render("debug_static", MergeCommon(fiber.Map{
		"Title":  "Static Files",
		"Page":   "debug_static",
		"Assets": []string{"/static/css/style.css", "/static/js/main.js", "/static/js/generate.js"},
	}, h.cfg, h.recentActivities(c)))
}

func (h *PageHandler) render(c fiber.Ctx, view, title string) error {
	return c.Render(view, MergeCommon(fiber.Map{
		"Title": title,
		"Page":  view,
	}, h.cfg, h.recentActivities(c)))
}

// recentActivities returns the entries shown in the sidebar. A store failure
// degrades to an empty list so the page still renders.
func (h *PageHandler) recentActivities(c fiber.Ctx) []models.Activity {
	entries, err := h.log.List(c.Context(), middleware.SessionID(c), h.cfg.ActivityDisplayLimit)
	if err != nil {
		h.logger.Warn("failed to load activities", zap.Error(err))
		return nil
	}
	return entries
}
