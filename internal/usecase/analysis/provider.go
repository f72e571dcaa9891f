package analysis

import (
	"context"

	"github.com/callcoachhq/call-coach/internal/domain/entities"
	pkgai "github.com/callcoachhq/call-coach/pkg/ai"
)

// Provider runs the three analysis operations for a call. Available
// reports whether a live provider credential is configured; when it is
// not, every operation takes the deterministic demo path instead.
type Provider interface {
	Available() bool
	Summarize(ctx context.Context, call *entities.Call) (*entities.Summary, error)
	Score(ctx context.Context, call *entities.Call) (*entities.Score, error)
	DetectObjections(ctx context.Context, call *entities.Call) ([]entities.Objection, error)
}

type groqProvider struct {
	client *pkgai.GroqClient
	parser *Parser
}

// NewProvider creates a Provider backed by the given Groq client. The
// client handle is constructed once by the caller and shared; it is
// read-only after construction and safe for concurrent use. A nil or
// unconfigured client selects the demo path.
func NewProvider(client *pkgai.GroqClient) Provider {
	return &groqProvider{
		client: client,
		parser: NewParser(),
	}
}

func (p *groqProvider) Available() bool {
	return p.client.Available()
}

func (p *groqProvider) Summarize(ctx context.Context, call *entities.Call) (*entities.Summary, error) {
	transcript := truncateTranscript(call.TranscriptText)

	if !p.Available() {
		return fallbackSummary(call.RepName()), nil
	}

	content, err := p.client.ChatJSON(ctx, summarizeSystemPrompt, summarizeUserPrompt(transcript), summarizeTemperature)
	if err != nil {
		return nil, err
	}
	return p.parser.ParseSummary(content)
}

func (p *groqProvider) Score(ctx context.Context, call *entities.Call) (*entities.Score, error) {
	transcript := truncateTranscript(call.TranscriptText)

	if !p.Available() {
		return fallbackScore(), nil
	}

	content, err := p.client.ChatJSON(ctx, scoreSystemPrompt, scoreUserPrompt(transcript), scoreTemperature)
	if err != nil {
		return nil, err
	}
	return p.parser.ParseScore(content)
}

func (p *groqProvider) DetectObjections(ctx context.Context, call *entities.Call) ([]entities.Objection, error) {
	transcript := truncateTranscript(call.TranscriptText)

	if !p.Available() {
		return fallbackObjections(transcript), nil
	}

	content, err := p.client.ChatJSON(ctx, objectionsSystemPrompt, objectionsUserPrompt(transcript), objectionsTemperature)
	if err != nil {
		return nil, err
	}
	return p.parser.ParseObjections(content)
}
