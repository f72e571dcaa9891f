package analysis

import (
	"context"
	"strings"

	"github.com/callcoachhq/call-coach/internal/domain/entities"
)

// Pipeline orchestrates the per-call analysis operations: truncation,
// the validity gate for scoring, and provider dispatch. It holds no
// mutable state and is safe for concurrent use.
type Pipeline struct {
	provider Provider
}

// NewPipeline creates a Pipeline over the given provider
func NewPipeline(provider Provider) *Pipeline {
	return &Pipeline{provider: provider}
}

// Available reports whether a live provider is configured
func (pl *Pipeline) Available() bool {
	return pl.provider.Available()
}

// Summarize produces a normalized summary for the call. There is no
// validity gate here: even garbage input gets a best-effort summary.
func (pl *Pipeline) Summarize(ctx context.Context, call *entities.Call) (*entities.Summary, error) {
	return pl.provider.Summarize(ctx, call)
}

// Score produces a normalized score for the call. Transcripts the
// heuristic gate rejects short-circuit to the zero score without ever
// reaching the provider.
func (pl *Pipeline) Score(ctx context.Context, call *entities.Call) (*entities.Score, error) {
	trimmed := strings.TrimSpace(truncateTranscript(call.TranscriptText))
	if isInvalidTranscript(trimmed) {
		return entities.ZeroScore(entities.InvalidTranscriptRationale), nil
	}
	return pl.provider.Score(ctx, call)
}

// DetectObjections produces the normalized objection list for the call
func (pl *Pipeline) DetectObjections(ctx context.Context, call *entities.Call) ([]entities.Objection, error) {
	return pl.provider.DetectObjections(ctx, call)
}
