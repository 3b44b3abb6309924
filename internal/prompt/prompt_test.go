package prompt

import (
	"errors"
	"strings"
	"testing"

	"marketai/internal/models"
)

func TestBuild_ContainsEveryField(t *testing.T) {
	tests := []struct {
		useCase models.UseCase
		fields  Fields
	}{
		{
			useCase: models.UseCaseCampaign,
			fields: Fields{
				"product":   "SolarMax Panels",
				"audience":  "Homeowners aged 30-55",
				"platforms": "Instagram, Facebook",
				"tone":      "friendly",
				"goal":      "drive pre-orders",
			},
		},
		{
			useCase: models.UseCasePitch,
			fields: Fields{
				"product":      "LedgerFlow",
				"features":     "auto reconciliation, audit trail",
				"customer":     "Jane Doe",
				"industry":     "Logistics",
				"company_size": "200-500 employees",
				"challenges":   "manual month-end close",
				"goals":        "close books in 3 days",
				"competitors":  "QuickBooks, Xero",
				"pitch_type":   "email",
				"tone":         "consultative",
				"notes":        "met at a trade show",
			},
		},
		{
			useCase: models.UseCaseLeadScore,
			fields: Fields{
				"name":            "Sam Lee",
				"company":         "Northwind",
				"role":            "VP Operations",
				"budget":          "$50k approved",
				"need":            "replace legacy ERP",
				"urgency":         "high",
				"timeline":        "Q3",
				"decision_makers": "CFO and VP Ops",
				"challenges":      "data migration",
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.useCase), func(t *testing.T) {
			got, err := Build(tt.useCase, tt.fields)
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			for name, value := range tt.fields {
				if !strings.Contains(got, value) {
					t.Errorf("prompt missing field %s value %q", name, value)
				}
			}
		})
	}
}

func TestBuild_Defaults(t *testing.T) {
	tests := []struct {
		name    string
		useCase models.UseCase
		fields  Fields
		want    []string
	}{
		{
			name:    "campaign tone and goal",
			useCase: models.UseCaseCampaign,
			fields:  Fields{"product": "Widget"},
			want:    []string{"TONE: professional", "GOAL: increase awareness", "PLATFORMS: \n"},
		},
		{
			name:    "blank tone falls back",
			useCase: models.UseCaseCampaign,
			fields:  Fields{"tone": "   "},
			want:    []string{"TONE: professional"},
		},
		{
			name:    "pitch list fields",
			useCase: models.UseCasePitch,
			fields:  Fields{},
			want: []string{
				"KEY FEATURES: Not specified",
				"COMPETITORS: Not specified",
				"PITCH TYPE: sales pitch",
				"DESIRED TONE: professional",
				"ADDITIONAL NOTES: None",
				"Problem-solution fit for their company size",
				"unique vs competitors",
				"Highlight these key features: the features provided",
				"Specific solutions to: the customer challenges",
				"next steps for a follow-up",
				"Optimized message template",
			},
		},
		{
			name:    "lead fields empty",
			useCase: models.UseCaseLeadScore,
			fields:  nil,
			want:    []string{"- Name: \n", "Probability of Conversion: X%\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.useCase, tt.fields)
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("prompt missing %q", w)
				}
			}
		})
	}
}

func TestBuild_PercentInInputIsLiteral(t *testing.T) {
	got := Campaign(Fields{"goal": "grow signups 20%"})
	if !strings.Contains(got, "GOAL: grow signups 20%\n") {
		t.Errorf("percent sign in input was not kept literally:\n%s", got)
	}
	if strings.Contains(got, "%!") {
		t.Error("prompt contains a formatting error marker")
	}
}

func TestBuild_Deterministic(t *testing.T) {
	fields := Fields{"product": "A", "customer": "B"}
	first, _ := Build(models.UseCasePitch, fields)
	second, _ := Build(models.UseCasePitch, fields)
	if first != second {
		t.Error("Build() is not deterministic")
	}
}

func TestBuild_UnknownUseCase(t *testing.T) {
	_, err := Build(models.UseCase("newsletter"), Fields{})
	if !errors.Is(err, ErrUnknownUseCase) {
		t.Errorf("Build() error = %v, want ErrUnknownUseCase", err)
	}
}
