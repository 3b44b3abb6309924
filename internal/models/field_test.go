package models

import (
	"encoding/json"
	"testing"
)

func TestField_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind FieldKind
		want     string
	}{
		{"string", `"Acme CRM"`, FieldScalar, "Acme CRM"},
		{"empty string", `""`, FieldScalar, ""},
		{"list", `["LinkedIn", "Email"]`, FieldList, "LinkedIn, Email"},
		{"single item list", `["Twitter"]`, FieldList, "Twitter"},
		{"empty list", `[]`, FieldList, ""},
		{"null", `null`, FieldAbsent, ""},
		{"number", `42`, FieldScalar, "42"},
		{"bool", `true`, FieldScalar, "true"},
		{"list with null", `["a", null, "b"]`, FieldList, "a, b"},
		{"list with number", `["a", 3]`, FieldList, "a, 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Field
			if err := json.Unmarshal([]byte(tt.input), &f); err != nil {
				t.Fatalf("Unmarshal(%s) error: %v", tt.input, err)
			}
			if f.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", f.Kind, tt.wantKind)
			}
			if got := f.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPayload_Decode(t *testing.T) {
	body := `{"product": "Widget", "platforms": ["Instagram", "TikTok"], "tone": null}`

	var p Payload
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	if got := p.Text("product"); got != "Widget" {
		t.Errorf("product = %q, want %q", got, "Widget")
	}
	if got := p.Text("platforms"); got != "Instagram, TikTok" {
		t.Errorf("platforms = %q, want %q", got, "Instagram, TikTok")
	}
	if !p.Get("tone").IsBlank() {
		t.Error("null tone should be blank")
	}
	if !p.Get("missing").IsBlank() {
		t.Error("missing field should be blank")
	}

	normalized := p.Normalize()
	if normalized["platforms"] != "Instagram, TikTok" {
		t.Errorf("Normalize()[platforms] = %q", normalized["platforms"])
	}
}

func TestPayload_NilIsUsable(t *testing.T) {
	var p Payload
	if got := p.Text("anything"); got != "" {
		t.Errorf("nil payload Text() = %q, want empty", got)
	}
}

func TestField_MarshalJSONKeepsShape(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{"list", List("a", "b"), `["a","b"]`},
		{"scalar", Scalar("x"), `"x"`},
		{"absent", Field{}, `""`},
		{"empty list", List(), `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.field)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestUseCase_Valid(t *testing.T) {
	for _, u := range UseCases {
		if !u.Valid() {
			t.Errorf("%q should be valid", u)
		}
	}
	if UseCase("newsletter").Valid() {
		t.Error("unknown use case should not be valid")
	}
}
