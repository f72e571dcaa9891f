package analysis

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/callcoachhq/call-coach/internal/domain/entities"
)

// Parser coerces provider JSON into the fixed result types. Every field
// is treated as optional: missing or non-conforming fields fall back to
// safe defaults; only a response whose envelope is not a JSON object at
// all is an error.
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// ParseSummary parses a summarize response
func (p *Parser) ParseSummary(content string) (*entities.Summary, error) {
	m, err := parseEnvelope(content)
	if err != nil {
		return nil, err
	}

	isSalesCall := asBool(m["isSalesCall"], false)

	category := strings.TrimSpace(asString(m["category"], ""))
	if category == "" {
		if isSalesCall {
			category = entities.CategorySalesCall
		} else {
			category = entities.CategoryOther
		}
	}

	return &entities.Summary{
		Summary:       asString(m["summary"], ""),
		KeyMoments:    asStringSlice(m["keyMoments"]),
		NextSteps:     asStringSlice(m["nextSteps"]),
		CoachingNotes: coachingNotes(m["coachingNotes"]),
		IsSalesCall:   isSalesCall,
		Category:      category,
		Tags:          asStringSlice(m["tags"]),
	}, nil
}

// ParseScore parses a score response. When the provider classifies the
// transcript as not a sales call, every numeric field is forced to zero
// regardless of what the provider returned for it.
func (p *Parser) ParseScore(content string) (*entities.Score, error) {
	m, err := parseEnvelope(content)
	if err != nil {
		return nil, err
	}

	isSalesCall := asBool(m["isSalesCall"], false)
	rationale := asString(m["rationale"], "")

	if !isSalesCall {
		return entities.ZeroScore(rationale), nil
	}

	var cats map[string]json.RawMessage
	if raw, ok := m["categories"]; ok {
		_ = json.Unmarshal(raw, &cats)
	}

	return &entities.Score{
		Overall: roundInt(asFloat(m["overall"], 0)),
		Categories: entities.ScoreCategories{
			Discovery:  roundInt(asFloat(cats["discovery"], 0)),
			Objections: roundInt(asFloat(cats["objections"], 0)),
			Clarity:    roundInt(asFloat(cats["clarity"], 0)),
			NextSteps:  roundInt(asFloat(cats["nextSteps"], 0)),
		},
		Rationale:   rationale,
		IsSalesCall: true,
	}, nil
}

// ParseObjections parses an objection detection response, keeping only
// entries of a known type with confidence at or above 0.5. A transcript
// classified as not a sales call yields an empty list.
func (p *Parser) ParseObjections(content string) ([]entities.Objection, error) {
	m, err := parseEnvelope(content)
	if err != nil {
		return nil, err
	}

	if !asBool(m["isSalesCall"], false) {
		return []entities.Objection{}, nil
	}

	var items []json.RawMessage
	if raw, ok := m["objections"]; ok {
		_ = json.Unmarshal(raw, &items)
	}

	objections := make([]entities.Objection, 0, len(items))
	for _, item := range items {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil {
			continue
		}

		objType := entities.ObjectionType(strings.ToLower(strings.TrimSpace(asString(fields["type"], ""))))
		if !knownObjectionType(objType) {
			continue
		}

		confidence := asFloat(fields["confidence"], 0)
		if confidence < 0.5 {
			continue
		}

		objections = append(objections, entities.Objection{
			Type:       objType,
			Snippet:    asString(fields["snippet"], ""),
			Confidence: confidence,
		})
	}

	return objections, nil
}

func knownObjectionType(t entities.ObjectionType) bool {
	for _, known := range entities.ObjectionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// parseEnvelope unwraps markdown fencing and decodes the top-level JSON
// object. An unparsable envelope fails the whole operation.
func parseEnvelope(content string) (map[string]json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal([]byte(extractJSON(content)), &m); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	return m, nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}

// coachingNotes accepts either a string or a list of tips; a list is
// joined into a single bulleted string
func coachingNotes(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	tips := asStringSlice(raw)
	if len(tips) == 0 {
		return ""
	}
	return "• " + strings.Join(tips, "\n• ")
}

func asString(raw json.RawMessage, def string) string {
	if raw == nil {
		return def
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return def
	}
	return s
}

func asBool(raw json.RawMessage, def bool) bool {
	if raw == nil {
		return def
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return def
	}
	return b
}

func asFloat(raw json.RawMessage, def float64) float64 {
	if raw == nil {
		return def
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return def
	}
	return f
}

func asStringSlice(raw json.RawMessage) []string {
	out := make([]string, 0)
	if raw == nil {
		return out
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return out
	}
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			continue
		}
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func roundInt(f float64) int {
	return int(math.Round(f))
}
