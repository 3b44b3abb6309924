package handlers

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"marketai/internal/config"
	"marketai/internal/models"
)

// ActivityView is an activity entry prepared for the sidebar.
type ActivityView struct {
	ID      int64
	Type    string
	Label   string
	Preview string
	When    string
}

var activityLabels = map[models.UseCase]string{
	models.UseCaseCampaign:  "Campaign",
	models.UseCasePitch:     "Sales Pitch",
	models.UseCaseLeadScore: "Lead Score",
}

// NewActivityViews converts entries for template rendering.
func NewActivityViews(entries []models.Activity) []ActivityView {
	views := make([]ActivityView, 0, len(entries))
	for _, e := range entries {
		label, ok := activityLabels[e.Type]
		if !ok {
			label = string(e.Type)
		}
		views = append(views, ActivityView{
			ID:      e.ID,
			Type:    string(e.Type),
			Label:   label,
			Preview: e.Preview,
			When:    e.Timestamp.Format("Jan 2, 15:04"),
		})
	}
	return views
}

// MergeCommon adds the values every page shares to a fiber.Map.
func MergeCommon(data fiber.Map, cfg *config.Config, activities []models.Activity) fiber.Map {
	if _, ok := data["Page"]; !ok {
		data["Page"] = ""
	}
	data["AppName"] = cfg.AppName
	data["AppVersion"] = cfg.AppVersion
	data["AIModel"] = cfg.AIModelName
	data["CurrentYear"] = time.Now().Year()
	data["Activities"] = NewActivityViews(activities)
	return data
}
