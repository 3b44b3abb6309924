package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"go.uber.org/zap"

	"marketai/internal/activity"
	"marketai/internal/completion"
	"marketai/internal/config"
	"marketai/internal/metrics"
	"marketai/internal/middleware"
	"marketai/internal/models"
	"marketai/internal/prompt"
	"marketai/internal/render"
)

// customerEchoLength bounds the customer name echoed into a pitch activity.
const customerEchoLength = 50

// GenerateHandler runs the campaign, pitch and lead scoring flows.
type GenerateHandler struct {
	client completion.Client
	log    *activity.Log
	cfg    *config.Config
	logger *zap.Logger
}

// NewGenerateHandler creates a new generation handler.
func NewGenerateHandler(client completion.Client, log *activity.Log, cfg *config.Config, logger *zap.Logger) *GenerateHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GenerateHandler{client: client, log: log, cfg: cfg, logger: logger}
}

// result is one successful completion and its rendered form.
type result struct {
	payload models.Payload
	text    string
	html    string
}

// Campaign generates a marketing campaign.
func (h *GenerateHandler) Campaign(c fiber.Ctx) error {
	res, err := h.generate(c, models.UseCaseCampaign)
	if err != nil {
		return jsonFailure(c, err)
	}

	platforms := res.payload.Get("platforms")
	if platforms.Kind == models.FieldAbsent {
		platforms = models.List()
	}
	h.record(c, models.UseCaseCampaign, map[string]any{
		"product":   res.payload.Text("product"),
		"platforms": platforms,
	}, res.text)

	return c.JSON(models.GenerateResponse{
		Success: true,
		Result:  res.html,
		Raw:     res.text,
	})
}

// Pitch generates a personalized sales pitch.
func (h *GenerateHandler) Pitch(c fiber.Ctx) error {
	res, err := h.generate(c, models.UseCasePitch)
	if err != nil {
		return jsonFailure(c, err)
	}

	h.record(c, models.UseCasePitch, map[string]any{
		"product":  res.payload.Text("product"),
		"customer": activity.Truncate(res.payload.Text("customer"), customerEchoLength, ""),
	}, res.text)

	return c.JSON(models.GenerateResponse{
		Success: true,
		Result:  res.html,
		Raw:     res.text,
	})
}

// LeadScore scores a lead, extracts its total and grades it hot, warm or cold.
func (h *GenerateHandler) LeadScore(c fiber.Ctx) error {
	res, err := h.generate(c, models.UseCaseLeadScore)
	if err != nil {
		return jsonFailure(c, err)
	}

	score := render.ExtractScore(res.text)
	qualification := render.Qualify(score)
	metrics.RecordLeadScore(score)

	h.record(c, models.UseCaseLeadScore, map[string]any{
		"name":          res.payload.Text("name"),
		"company":       res.payload.Text("company"),
		"qualification": string(qualification.Tier),
	}, fmt.Sprintf("Score: %d/%d - %s", score, render.MaxScore, qualification.Label))

	return c.JSON(models.LeadScoreResponse{
		Success:       true,
		Result:        res.html,
		Score:         score,
		Raw:           res.text,
		Qualification: qualification,
	})
}

// generate decodes the payload, builds the prompt, calls the completion
// service and renders the markdown result.
func (h *GenerateHandler) generate(c fiber.Ctx, useCase models.UseCase) (*result, error) {
	logger := h.logger.With(
		zap.String("use_case", string(useCase)),
		zap.String("request_id", requestid.FromContext(c)),
	)

	payload, err := decodePayload(c.Body())
	if err != nil {
		logger.Info("rejected request body", zap.Error(err))
		return nil, err
	}

	userMessage, err := prompt.Build(useCase, payload.Normalize())
	if err != nil {
		return nil, err
	}

	profile := h.cfg.Profile(useCase)
	ctx := c.Context()
	if h.cfg.CompletionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.cfg.CompletionTimeout)
		defer cancel()
	}

	start := time.Now()
	text, err := h.client.Complete(ctx, completion.Request{
		System:      profile.SystemMessage,
		User:        userMessage,
		Temperature: profile.Temperature,
		MaxTokens:   profile.MaxTokens,
	})
	elapsed := time.Since(start)
	if err != nil {
		metrics.RecordCompletion(string(useCase), metrics.OutcomeError, elapsed)
		logger.Error("generation failed", zap.Duration("duration", elapsed), zap.Error(err))
		return nil, err
	}
	metrics.RecordCompletion(string(useCase), metrics.OutcomeSuccess, elapsed)

	logger.Info("generation completed",
		zap.Duration("duration", elapsed),
		zap.Int("response_chars", len(text)),
	)

	return &result{
		payload: payload,
		text:    text,
		html:    render.Markdown(text),
	}, nil
}

// record appends an activity entry. The generation already succeeded, so a
// failed append is logged and does not fail the request.
func (h *GenerateHandler) record(c fiber.Ctx, useCase models.UseCase, data map[string]any, previewText string) {
	entry, err := h.log.Append(c.Context(), middleware.SessionID(c), useCase, data, previewText)
	if err != nil {
		h.logger.Warn("failed to record activity",
			zap.String("use_case", string(useCase)),
			zap.String("request_id", requestid.FromContext(c)),
			zap.Error(err),
		)
		return
	}
	metrics.RecordActivity(string(useCase))
	h.logger.Debug("activity recorded", zap.String("use_case", string(useCase)), zap.Int64("activity_id", entry.ID))
}

// decodePayload parses a JSON object body. An empty body is an empty payload.
func decodePayload(body []byte) (models.Payload, error) {
	payload := models.Payload{}
	if len(body) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	return payload, nil
}
