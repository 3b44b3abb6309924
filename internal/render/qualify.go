package render

import "fmt"

// Tier is the qualification band a lead score falls into.
type Tier string

const (
	TierHot  Tier = "hot"
	TierWarm Tier = "warm"
	TierCold Tier = "cold"
)

// Tier thresholds, inclusive.
const (
	HotThreshold  = 70
	WarmThreshold = 40
)

// FollowUp is one step of a follow-up schedule.
type FollowUp struct {
	When   string `json:"when"`
	Action string `json:"action"`
}

// Qualification describes what to do with a scored lead.
type Qualification struct {
	Tier        Tier       `json:"tier"`
	Label       string     `json:"label"`
	Description string     `json:"description"`
	NextSteps   []string   `json:"next_steps"`
	Schedule    []FollowUp `json:"schedule"`
}

type tierPlan struct {
	label       string
	description string
	nextSteps   []string
	schedule    []FollowUp
}

var tierPlans = map[Tier]tierPlan{
	TierHot: {
		label:       "Hot Lead",
		description: "High priority! This lead has a %d%% probability of conversion. Immediate follow-up recommended.",
		nextSteps: []string{
			"Contact within 24 hours",
			"Schedule a demo or meeting",
			"Prepare proposal with pricing",
			"Involve senior team members if needed",
		},
		schedule: []FollowUp{
			{"Day 1", "Initial contact"},
			{"Day 2", "Follow-up call"},
			{"Day 3", "Proposal sent"},
			{"Day 7", "Final follow-up"},
		},
	},
	TierWarm: {
		label:       "Warm Lead",
		description: "Medium priority. This lead has a %d%% probability of conversion. Nurture with regular follow-ups.",
		nextSteps: []string{
			"Send additional resources",
			"Schedule a discovery call",
			"Add to regular nurturing sequence",
			"Follow up in 3-5 days",
		},
		schedule: []FollowUp{
			{"Week 1", "Initial contact"},
			{"Week 2", "Educational content"},
			{"Week 3", "Follow-up call"},
			{"Month 1", "Re-assessment"},
		},
	},
	TierCold: {
		label:       "Cold Lead",
		description: "Low priority. This lead has a %d%% probability of conversion. Consider long-term nurturing.",
		nextSteps: []string{
			"Add to monthly newsletter",
			"Share educational content",
			"Re-engage in 30 days",
			"Monitor for trigger events",
		},
		schedule: []FollowUp{
			{"Month 1", "Newsletter"},
			{"Month 2", "Check-in email"},
			{"Month 3", "Value content"},
			{"Month 6", "Re-engagement"},
		},
	},
}

// TierFor returns the band for score.
func TierFor(score int) Tier {
	switch {
	case score >= HotThreshold:
		return TierHot
	case score >= WarmThreshold:
		return TierWarm
	default:
		return TierCold
	}
}

// Qualify grades a lead score and attaches the matching follow-up plan.
func Qualify(score int) Qualification {
	tier := TierFor(score)
	plan := tierPlans[tier]
	return Qualification{
		Tier:        tier,
		Label:       plan.label,
		Description: fmt.Sprintf(plan.description, score),
		NextSteps:   append([]string(nil), plan.nextSteps...),
		Schedule:    append([]FollowUp(nil), plan.schedule...),
	}
}
