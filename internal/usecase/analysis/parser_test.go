package analysis

import (
	"strings"
	"testing"

	"github.com/callcoachhq/call-coach/internal/domain/entities"
)

func TestParseSummary_FullPayload(t *testing.T) {
	content := `{
		"summary": "Solid discovery call.",
		"keyMoments": ["Budget discussed at 10:00"],
		"nextSteps": ["Send proposal"],
		"coachingNotes": "Ask about decision process earlier.",
		"isSalesCall": true,
		"category": "sales_call",
		"tags": ["discovery", "pricing"]
	}`

	summary, err := NewParser().ParseSummary(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Summary != "Solid discovery call." {
		t.Fatalf("unexpected summary %q", summary.Summary)
	}
	if len(summary.KeyMoments) != 1 || len(summary.NextSteps) != 1 || len(summary.Tags) != 2 {
		t.Fatalf("unexpected list fields %+v", summary)
	}
	if !summary.IsSalesCall || summary.Category != entities.CategorySalesCall {
		t.Fatalf("unexpected classification %+v", summary)
	}
}

func TestParseSummary_MissingFieldsDefault(t *testing.T) {
	summary, err := NewParser().ParseSummary(`{"isSalesCall": true}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Summary != "" || summary.CoachingNotes != "" {
		t.Fatalf("missing strings should default empty, got %+v", summary)
	}
	if summary.KeyMoments == nil || summary.NextSteps == nil || summary.Tags == nil {
		t.Fatalf("missing lists should default to empty slices")
	}
	if summary.Category != entities.CategorySalesCall {
		t.Fatalf("missing category should default from isSalesCall, got %q", summary.Category)
	}
}

func TestParseSummary_NonSalesCallDefaultCategory(t *testing.T) {
	summary, err := NewParser().ParseSummary(`{"isSalesCall": false}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Category != entities.CategoryOther {
		t.Fatalf("expected category other, got %q", summary.Category)
	}
}

func TestParseSummary_CoachingNotesList(t *testing.T) {
	content := `{"isSalesCall": true, "coachingNotes": ["Slow down", "Confirm next steps"]}`
	summary, err := NewParser().ParseSummary(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "• Slow down\n• Confirm next steps"
	if summary.CoachingNotes != want {
		t.Fatalf("expected bulleted notes %q got %q", want, summary.CoachingNotes)
	}
}

func TestParseSummary_MarkdownFencedPayload(t *testing.T) {
	content := "```json\n{\"summary\": \"Fenced.\", \"isSalesCall\": true}\n```"
	summary, err := NewParser().ParseSummary(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Summary != "Fenced." {
		t.Fatalf("fenced payload not extracted, got %q", summary.Summary)
	}
}

func TestParseSummary_UnparsableEnvelope(t *testing.T) {
	_, err := NewParser().ParseSummary("I could not produce JSON, sorry.")
	if err == nil {
		t.Fatalf("expected an error for a non-JSON envelope")
	}
	if !strings.Contains(err.Error(), "failed to parse JSON response") {
		t.Fatalf("unexpected error message %q", err.Error())
	}
}

func TestParseScore_FullPayload(t *testing.T) {
	content := `{
		"overall": 81.4,
		"categories": {"discovery": 8, "objections": 7.6, "clarity": 9, "nextSteps": 8},
		"rationale": "Strong throughout.",
		"isSalesCall": true
	}`

	score, err := NewParser().ParseScore(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score.Overall != 81 {
		t.Fatalf("expected rounded overall 81 got %d", score.Overall)
	}
	if score.Categories.Objections != 8 {
		t.Fatalf("expected rounded objections 8 got %d", score.Categories.Objections)
	}
	if !score.IsSalesCall || score.Rationale != "Strong throughout." {
		t.Fatalf("unexpected score %+v", score)
	}
}

func TestParseScore_NotSalesCallForcesZeros(t *testing.T) {
	content := `{
		"overall": 95,
		"categories": {"discovery": 9, "objections": 9, "clarity": 9, "nextSteps": 9},
		"rationale": "Not a sales conversation.",
		"isSalesCall": false
	}`

	score, err := NewParser().ParseScore(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score.Overall != 0 || score.Categories != (entities.ScoreCategories{}) {
		t.Fatalf("non-sales call must zero all numbers, got %+v", score)
	}
	if score.IsSalesCall {
		t.Fatalf("isSalesCall should stay false")
	}
	if score.Rationale != "Not a sales conversation." {
		t.Fatalf("rationale should be preserved, got %q", score.Rationale)
	}
}

func TestParseScore_MalformedNumbersDefaultZero(t *testing.T) {
	content := `{"overall": "eighty", "categories": {"discovery": null}, "isSalesCall": true}`
	score, err := NewParser().ParseScore(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score.Overall != 0 || score.Categories.Discovery != 0 {
		t.Fatalf("non-numeric fields should default to zero, got %+v", score)
	}
}

func TestParseObjections_FiltersUnknownTypeAndLowConfidence(t *testing.T) {
	content := `{
		"isSalesCall": true,
		"objections": [
			{"type": "pricing", "snippet": "too expensive", "confidence": 0.9},
			{"type": "weather", "snippet": "it is raining", "confidence": 0.9},
			{"type": "timing", "snippet": "maybe next quarter", "confidence": 0.4}
		]
	}`

	objections, err := NewParser().ParseObjections(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(objections) != 1 {
		t.Fatalf("expected 1 surviving objection got %d", len(objections))
	}
	if objections[0].Type != entities.ObjectionPricing || objections[0].Confidence != 0.9 {
		t.Fatalf("unexpected objection %+v", objections[0])
	}
}

func TestParseObjections_TypeNormalized(t *testing.T) {
	content := `{"isSalesCall": true, "objections": [{"type": " Pricing ", "snippet": "x", "confidence": 0.8}]}`
	objections, err := NewParser().ParseObjections(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(objections) != 1 || objections[0].Type != entities.ObjectionPricing {
		t.Fatalf("type should be trimmed and lowercased, got %+v", objections)
	}
}

func TestParseObjections_NotSalesCallEmpty(t *testing.T) {
	content := `{"isSalesCall": false, "objections": [{"type": "pricing", "snippet": "x", "confidence": 0.9}]}`
	objections, err := NewParser().ParseObjections(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if objections == nil || len(objections) != 0 {
		t.Fatalf("non-sales call should yield an empty list, got %+v", objections)
	}
}

func TestParseObjections_MalformedEntrySkipped(t *testing.T) {
	content := `{"isSalesCall": true, "objections": ["not an object", {"type": "trust", "snippet": "y", "confidence": 0.7}]}`
	objections, err := NewParser().ParseObjections(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(objections) != 1 || objections[0].Type != entities.ObjectionTrust {
		t.Fatalf("malformed entries should be skipped, got %+v", objections)
	}
}
