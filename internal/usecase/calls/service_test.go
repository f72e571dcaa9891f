package calls

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
	"github.com/callcoachhq/call-coach/internal/usecase/analysis"
	pkgai "github.com/callcoachhq/call-coach/pkg/ai"
	"github.com/callcoachhq/call-coach/pkg/config"
)

type stubCallRepo struct {
	created []*entities.Call
	deleted map[uuid.UUID]bool
}

func (r *stubCallRepo) Create(ctx context.Context, call *entities.Call) error {
	r.created = append(r.created, call)
	return nil
}

func (r *stubCallRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*entities.Call, error) {
	for _, c := range r.created {
		if c.ID == id && c.UserID == userID {
			return c, nil
		}
	}
	return nil, nil
}

func (r *stubCallRepo) FindByUserID(ctx context.Context, userID uuid.UUID, filter *repositories.CallFilters) ([]*entities.Call, error) {
	return r.created, nil
}

func (r *stubCallRepo) UpdateSummary(ctx context.Context, id, userID uuid.UUID, summary, coaching, category string, tags []string) error {
	return nil
}

func (r *stubCallRepo) UpdateScore(ctx context.Context, id, userID uuid.UUID, score *entities.Score) error {
	return nil
}

func (r *stubCallRepo) UpdateObjections(ctx context.Context, id, userID uuid.UUID, objections []entities.Objection) error {
	return nil
}

func (r *stubCallRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if r.deleted == nil {
		r.deleted = make(map[uuid.UUID]bool)
	}
	if r.deleted[id] {
		return entities.ErrCallNotFound
	}
	r.deleted[id] = true
	return nil
}

type stubRepRepo struct {
	reps map[uuid.UUID]*entities.Rep
}

func (r *stubRepRepo) Create(ctx context.Context, rep *entities.Rep) error {
	r.reps[rep.ID] = rep
	return nil
}

func (r *stubRepRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*entities.Rep, error) {
	rep, ok := r.reps[id]
	if !ok || rep.UserID != userID {
		return nil, nil
	}
	return rep, nil
}

func (r *stubRepRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Rep, error) {
	out := make([]*entities.Rep, 0)
	for _, rep := range r.reps {
		if rep.UserID == userID {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (r *stubRepRepo) Update(ctx context.Context, rep *entities.Rep) error {
	r.reps[rep.ID] = rep
	return nil
}

func (r *stubRepRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	delete(r.reps, id)
	return nil
}

func newTestService(t *testing.T, callRepo *stubCallRepo, repRepo *stubRepRepo) Service {
	t.Helper()
	t.Setenv("GROQ_API_KEY", "")
	pipeline := analysis.NewPipeline(analysis.NewProvider(pkgai.NewGroqClient(&config.GroqConfig{})))
	return NewService(callRepo, repRepo, pipeline, nil)
}

func validInput(repID uuid.UUID) CreateCallInput {
	return CreateCallInput{
		RepID:          repID,
		Title:          "Discovery Call - Acme Corp",
		OccurredAt:     time.Now().UTC(),
		TranscriptText: "Rep: Thanks for taking the time.\nProspect: Happy to chat about our process.",
		Source:         "paste",
	}
}

func TestCreateCall_Success(t *testing.T) {
	userID := uuid.New()
	rep := entities.NewRep(userID, "Sarah Johnson", "Senior Account Executive", "West Coast")
	callRepo := &stubCallRepo{}
	repRepo := &stubRepRepo{reps: map[uuid.UUID]*entities.Rep{rep.ID: rep}}
	svc := newTestService(t, callRepo, repRepo)

	call, err := svc.CreateCall(context.Background(), userID, validInput(rep.ID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if call.Rep == nil || call.Rep.Name != "Sarah Johnson" {
		t.Fatalf("created call should carry its rep, got %+v", call.Rep)
	}
	if len(callRepo.created) != 1 {
		t.Fatalf("expected 1 persisted call got %d", len(callRepo.created))
	}
}

func TestCreateCall_UnknownRep(t *testing.T) {
	userID := uuid.New()
	callRepo := &stubCallRepo{}
	repRepo := &stubRepRepo{reps: map[uuid.UUID]*entities.Rep{}}
	svc := newTestService(t, callRepo, repRepo)

	_, err := svc.CreateCall(context.Background(), userID, validInput(uuid.New()))
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_REP_NOT_FOUND {
		t.Fatalf("expected REP_NOT_FOUND got %v", err)
	}
}

func TestCreateCall_BlankTranscriptRejected(t *testing.T) {
	userID := uuid.New()
	rep := entities.NewRep(userID, "Sarah Johnson", "AE", "")
	callRepo := &stubCallRepo{}
	repRepo := &stubRepRepo{reps: map[uuid.UUID]*entities.Rep{rep.ID: rep}}
	svc := newTestService(t, callRepo, repRepo)

	input := validInput(rep.ID)
	input.TranscriptText = "   \n\t  "
	_, err := svc.CreateCall(context.Background(), userID, input)
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_INVALID_ARGUMENT {
		t.Fatalf("expected INVALID_ARGUMENT got %v", err)
	}
}

func TestCreateCall_OversizedTranscriptRejected(t *testing.T) {
	userID := uuid.New()
	rep := entities.NewRep(userID, "Sarah Johnson", "AE", "")
	callRepo := &stubCallRepo{}
	repRepo := &stubRepRepo{reps: map[uuid.UUID]*entities.Rep{rep.ID: rep}}
	svc := newTestService(t, callRepo, repRepo)

	input := validInput(rep.ID)
	input.TranscriptText = strings.Repeat("a", maxTranscriptInput+1)
	_, err := svc.CreateCall(context.Background(), userID, input)
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_INVALID_ARGUMENT {
		t.Fatalf("expected INVALID_ARGUMENT got %v", err)
	}
	if !strings.Contains(appErr.Message, "too long") {
		t.Fatalf("unexpected message %q", appErr.Message)
	}
}

func TestCreateCall_InvalidSourceRejected(t *testing.T) {
	userID := uuid.New()
	rep := entities.NewRep(userID, "Sarah Johnson", "AE", "")
	callRepo := &stubCallRepo{}
	repRepo := &stubRepRepo{reps: map[uuid.UUID]*entities.Rep{rep.ID: rep}}
	svc := newTestService(t, callRepo, repRepo)

	input := validInput(rep.ID)
	input.Source = "email"
	_, err := svc.CreateCall(context.Background(), userID, input)
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_INVALID_ARGUMENT {
		t.Fatalf("expected INVALID_ARGUMENT got %v", err)
	}
}

func TestGetCall_NotFound(t *testing.T) {
	svc := newTestService(t, &stubCallRepo{}, &stubRepRepo{reps: map[uuid.UUID]*entities.Rep{}})

	_, err := svc.GetCall(context.Background(), uuid.New(), uuid.New())
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_CALL_NOT_FOUND {
		t.Fatalf("expected CALL_NOT_FOUND got %v", err)
	}
}

func TestDeleteCall_MissingCallMapped(t *testing.T) {
	callRepo := &stubCallRepo{deleted: map[uuid.UUID]bool{}}
	svc := newTestService(t, callRepo, &stubRepRepo{reps: map[uuid.UUID]*entities.Rep{}})

	id := uuid.New()
	if err := svc.DeleteCall(context.Background(), id, uuid.New()); err != nil {
		t.Fatalf("first delete should succeed: %v", err)
	}
	err := svc.DeleteCall(context.Background(), id, uuid.New())
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_CALL_NOT_FOUND {
		t.Fatalf("expected CALL_NOT_FOUND got %v", err)
	}
}
