package analysis

import (
	"strings"
	"unicode"
)

// MaxTranscriptLength is the character budget sent to the provider.
// Longer transcripts are cut and marked so cost and latency stay bounded
// regardless of input size.
const MaxTranscriptLength = 10000

// TruncationMarker is appended to transcripts cut at MaxTranscriptLength
const TruncationMarker = "\n\n[Transcript truncated...]"

// truncateTranscript bounds the transcript to MaxTranscriptLength
// characters, appending the truncation marker when anything was cut
func truncateTranscript(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxTranscriptLength {
		return text
	}
	return string(runes[:MaxTranscriptLength]) + TruncationMarker
}

// isInvalidTranscript detects nonsense input (keyboard mashing, symbol
// noise, placeholder text) that is not worth scoring. It is applied only
// before scoring; summarize and objection detection always run.
func isInvalidTranscript(text string) bool {
	trimmed := strings.TrimSpace(text)

	// Too short to be meaningful dialogue
	if len([]rune(trimmed)) < 50 {
		return true
	}

	// Excessive repetition (e.g. "sdasdasdsadsad"): under 30% distinct
	// characters in short text
	stripped := make([]rune, 0, len(trimmed))
	for _, r := range strings.ToLower(trimmed) {
		if !unicode.IsSpace(r) {
			stripped = append(stripped, r)
		}
	}
	totalChars := len(stripped)
	if totalChars > 0 && totalChars < 100 {
		unique := make(map[rune]struct{}, totalChars)
		for _, r := range stripped {
			unique[r] = struct{}{}
		}
		if float64(len(unique))/float64(totalChars) < 0.3 {
			return true
		}
	}

	// Mostly non-alphabetic content suggests symbol noise
	alphabetic := 0
	totalLength := 0
	for _, r := range trimmed {
		totalLength++
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || unicode.IsSpace(r) {
			alphabetic++
		}
	}
	if totalLength > 0 && float64(alphabetic)/float64(totalLength) < 0.5 {
		return true
	}

	return false
}
