package analysis

import (
	"reflect"
	"strings"
	"testing"

	"github.com/callcoachhq/call-coach/internal/domain/entities"
)

func TestFallbackSummary_Deterministic(t *testing.T) {
	a := fallbackSummary("Sarah Johnson")
	b := fallbackSummary("Sarah Johnson")
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("fallback summary should be deterministic")
	}
	if !strings.Contains(a.Summary, "Sarah Johnson") {
		t.Fatalf("summary should mention the rep name, got %q", a.Summary)
	}
	if !a.IsSalesCall || a.Category != entities.CategorySalesCall {
		t.Fatalf("fallback summary should classify as a sales call")
	}
}

func TestFallbackScore_FixedValues(t *testing.T) {
	score := fallbackScore()
	if score.Overall != 72 {
		t.Fatalf("expected overall 72 got %d", score.Overall)
	}
	want := entities.ScoreCategories{Discovery: 7, Objections: 6, Clarity: 8, NextSteps: 7}
	if score.Categories != want {
		t.Fatalf("unexpected categories %+v", score.Categories)
	}
	if !score.IsSalesCall {
		t.Fatalf("fallback score should report a sales call")
	}
}

func TestFallbackObjections_PricingAndTiming(t *testing.T) {
	transcript := "Prospect: I'm concerned about the price honestly. " +
		"Can we revisit this later in the quarter when budget frees up?"

	objections := fallbackObjections(transcript)
	if len(objections) != 2 {
		t.Fatalf("expected 2 objections got %d", len(objections))
	}
	if objections[0].Type != entities.ObjectionPricing || objections[0].Confidence != 0.85 {
		t.Fatalf("unexpected first objection %+v", objections[0])
	}
	if objections[1].Type != entities.ObjectionTiming || objections[1].Confidence != 0.75 {
		t.Fatalf("unexpected second objection %+v", objections[1])
	}
	if !strings.Contains(objections[0].Snippet, "price") {
		t.Fatalf("pricing snippet should surround the keyword, got %q", objections[0].Snippet)
	}
}

func TestFallbackObjections_NoKeywordsNoObjections(t *testing.T) {
	objections := fallbackObjections("Prospect: This all sounds great, send over the paperwork.")
	if len(objections) != 0 {
		t.Fatalf("expected no objections got %d", len(objections))
	}
	if objections == nil {
		t.Fatalf("expected empty slice, not nil")
	}
}

func TestFallbackObjections_CaseInsensitive(t *testing.T) {
	objections := fallbackObjections("Prospect: The PRICE seems steep.")
	if len(objections) != 1 || objections[0].Type != entities.ObjectionPricing {
		t.Fatalf("keyword match should ignore case, got %+v", objections)
	}
}

func TestSnippetWindow_ClampedAtBounds(t *testing.T) {
	text := "price talk right at the start"
	got := snippetWindow(text, 0)
	if got != text {
		t.Fatalf("window should clamp to input bounds, got %q", got)
	}
}
