package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/callcoachhq/call-coach/errors"
	"github.com/callcoachhq/call-coach/internal/domain/entities"
	"github.com/callcoachhq/call-coach/internal/domain/repositories"
	"github.com/callcoachhq/call-coach/internal/infrastructure/cache"
	pkgai "github.com/callcoachhq/call-coach/pkg/ai"
	"github.com/callcoachhq/call-coach/pkg/config"
)

// stubCallRepo serves a fixed set of calls and records update calls
type stubCallRepo struct {
	calls map[uuid.UUID]*entities.Call

	summaryUpdates    int
	scoreUpdates      int
	objectionUpdates  int
	lastScore         *entities.Score
	lastObjections    []entities.Objection
}

func newStubCallRepo(calls ...*entities.Call) *stubCallRepo {
	repo := &stubCallRepo{calls: make(map[uuid.UUID]*entities.Call)}
	for _, c := range calls {
		repo.calls[c.ID] = c
	}
	return repo
}

func (r *stubCallRepo) Create(ctx context.Context, call *entities.Call) error {
	r.calls[call.ID] = call
	return nil
}

func (r *stubCallRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*entities.Call, error) {
	call, ok := r.calls[id]
	if !ok || call.UserID != userID {
		return nil, nil
	}
	return call, nil
}

func (r *stubCallRepo) FindByUserID(ctx context.Context, userID uuid.UUID, filter *repositories.CallFilters) ([]*entities.Call, error) {
	out := make([]*entities.Call, 0)
	for _, c := range r.calls {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubCallRepo) UpdateSummary(ctx context.Context, id, userID uuid.UUID, summary, coaching, category string, tags []string) error {
	r.summaryUpdates++
	return nil
}

func (r *stubCallRepo) UpdateScore(ctx context.Context, id, userID uuid.UUID, score *entities.Score) error {
	r.scoreUpdates++
	r.lastScore = score
	return nil
}

func (r *stubCallRepo) UpdateObjections(ctx context.Context, id, userID uuid.UUID, objections []entities.Objection) error {
	r.objectionUpdates++
	r.lastObjections = objections
	return nil
}

func (r *stubCallRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	delete(r.calls, id)
	return nil
}

func demoService(t *testing.T, repo repositories.CallRepository, store cache.Store) Service {
	t.Helper()
	t.Setenv("GROQ_API_KEY", "")
	pipeline := NewPipeline(NewProvider(pkgai.NewGroqClient(&config.GroqConfig{})))
	return NewService(repo, pipeline, store, time.Minute, nil)
}

func demoCall(userID uuid.UUID, transcript string) *entities.Call {
	return &entities.Call{
		ID:             uuid.New(),
		UserID:         userID,
		RepID:          uuid.New(),
		Rep:            &entities.Rep{Name: "Sarah Johnson"},
		Title:          "Discovery Call",
		OccurredAt:     time.Now().UTC(),
		TranscriptText: transcript,
		Source:         "paste",
	}
}

const validTranscript = `Rep: Thanks for taking the time today. Can you walk me through your current process?
Prospect: Sure. Right now everything is manual and it takes hours every week.
Rep: What would change for your team if that dropped to minutes?
Prospect: Honestly a lot, but I'm worried about the price this quarter.`

func TestScore_InvalidTranscriptShortCircuits(t *testing.T) {
	userID := uuid.New()
	call := demoCall(userID, "asdf")
	repo := newStubCallRepo(call)
	svc := demoService(t, repo, nil)

	score, err := svc.Score(context.Background(), call.ID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score.Overall != 0 || score.IsSalesCall {
		t.Fatalf("nonsense transcript should score zero, got %+v", score)
	}
	if !strings.Contains(score.Rationale, "Invalid or nonsensical transcript") {
		t.Fatalf("unexpected rationale %q", score.Rationale)
	}
	if repo.scoreUpdates != 1 {
		t.Fatalf("zero score should still persist, got %d updates", repo.scoreUpdates)
	}
}

func TestScore_DemoModePersistsFallback(t *testing.T) {
	userID := uuid.New()
	call := demoCall(userID, validTranscript)
	repo := newStubCallRepo(call)
	svc := demoService(t, repo, nil)

	score, err := svc.Score(context.Background(), call.ID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score.Overall != 72 {
		t.Fatalf("expected demo score 72 got %d", score.Overall)
	}
	if repo.lastScore == nil || repo.lastScore.Overall != 72 {
		t.Fatalf("score should be persisted via the repository")
	}
}

func TestSummarize_CallNotFound(t *testing.T) {
	repo := newStubCallRepo()
	svc := demoService(t, repo, nil)

	_, err := svc.Summarize(context.Background(), uuid.New(), uuid.New())
	if err == nil {
		t.Fatalf("expected an error for a missing call")
	}
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_CALL_NOT_FOUND {
		t.Fatalf("expected CALL_NOT_FOUND got %v", err)
	}
}

func TestSummarize_WrongUserNotFound(t *testing.T) {
	owner := uuid.New()
	call := demoCall(owner, validTranscript)
	repo := newStubCallRepo(call)
	svc := demoService(t, repo, nil)

	_, err := svc.Summarize(context.Background(), call.ID, uuid.New())
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_CALL_NOT_FOUND {
		t.Fatalf("another user's call must look missing, got %v", err)
	}
}

func TestDetectObjections_DemoModeFindsKeywords(t *testing.T) {
	userID := uuid.New()
	call := demoCall(userID, validTranscript)
	repo := newStubCallRepo(call)
	svc := demoService(t, repo, nil)

	objections, err := svc.DetectObjections(context.Background(), call.ID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(objections) != 1 || objections[0].Type != entities.ObjectionPricing {
		t.Fatalf("expected one pricing objection, got %+v", objections)
	}
	if repo.objectionUpdates != 1 {
		t.Fatalf("objections should be persisted, got %d updates", repo.objectionUpdates)
	}
}

func TestDemoCache_SecondCallSkipsPersistence(t *testing.T) {
	userID := uuid.New()
	call := demoCall(userID, validTranscript)
	repo := newStubCallRepo(call)
	svc := demoService(t, repo, cache.NewMemoryStore())

	ctx := context.Background()
	first, err := svc.Score(ctx, call.ID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Score(ctx, call.ID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Overall != second.Overall || first.Rationale != second.Rationale {
		t.Fatalf("cached score should match the first result")
	}
	if repo.scoreUpdates != 1 {
		t.Fatalf("cached run should not hit the repository again, got %d updates", repo.scoreUpdates)
	}
}
