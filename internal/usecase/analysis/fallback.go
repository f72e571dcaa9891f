package analysis

import (
	"fmt"
	"strings"

	"github.com/callcoachhq/call-coach/internal/domain/entities"
)

// Demo-mode analysis. Used when no provider credential is configured:
// every function here is a pure function of its inputs so repeated runs
// on the same call produce byte-identical results.

func fallbackSummary(repName string) *entities.Summary {
	return &entities.Summary{
		Summary: fmt.Sprintf("This call between %s and the prospect covered key discovery questions about their current process and pain points. The rep demonstrated good listening skills and identified several areas where our solution could help.", repName),
		KeyMoments: []string{
			"Prospect mentioned current tool limitations at 5:30",
			"Budget discussion at 12:15",
			"Decision timeline shared at 18:00",
		},
		NextSteps: []string{
			"Send pricing proposal by end of week",
			"Schedule technical demo for next Tuesday",
			"Follow up on budget approval process",
		},
		CoachingNotes: "Strong discovery work. Consider asking more about the decision-making process earlier in the call. The pricing objection was handled well with a soft close.",
		IsSalesCall:   true,
		Category:      entities.CategorySalesCall,
		Tags:          []string{"discovery", "pricing", "timeline"},
	}
}

func fallbackScore() *entities.Score {
	return &entities.Score{
		Overall: 72,
		Categories: entities.ScoreCategories{
			Discovery:  7,
			Objections: 6,
			Clarity:    8,
			NextSteps:  7,
		},
		Rationale:   "Good discovery questions and clear communication. Objection handling could be more proactive. Next steps were identified but could be more specific with timelines.",
		IsSalesCall: true,
	}
}

// fallbackObjections pattern-matches a small set of literal keywords and
// cuts a snippet window around the first match of each group
func fallbackObjections(transcript string) []entities.Objection {
	lower := strings.ToLower(transcript)
	objections := make([]entities.Objection, 0)

	if idx := firstIndex(lower, "price", "cost"); idx >= 0 {
		objections = append(objections, entities.Objection{
			Type:       entities.ObjectionPricing,
			Snippet:    snippetWindow(transcript, idx),
			Confidence: 0.85,
		})
	}

	if idx := firstIndex(lower, "later", "not now"); idx >= 0 {
		objections = append(objections, entities.Objection{
			Type:       entities.ObjectionTiming,
			Snippet:    snippetWindow(transcript, idx),
			Confidence: 0.75,
		})
	}

	return objections
}

// firstIndex returns the index of whichever keyword matches first,
// checking keywords in the given priority order
func firstIndex(text string, keywords ...string) int {
	for _, kw := range keywords {
		if idx := strings.Index(text, kw); idx >= 0 {
			return idx
		}
	}
	return -1
}

// snippetWindow cuts 50 characters before and 100 after the match,
// clamped to the transcript bounds
func snippetWindow(text string, idx int) string {
	start := idx - 50
	if start < 0 {
		start = 0
	}
	end := idx + 100
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}
