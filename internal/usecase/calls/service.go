package calls

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/callcoachhq/call-coach/errors"
	"github.com/callcoachhq/call-coach/internal/domain/entities"
	"github.com/callcoachhq/call-coach/internal/domain/repositories"
	"github.com/callcoachhq/call-coach/internal/usecase/analysis"
	pkgvalidator "github.com/callcoachhq/call-coach/pkg/validator"
)

// maxTranscriptInput is the upper bound accepted at creation time. The
// analysis pipeline applies its own tighter truncation before provider
// calls; this bound only protects storage.
const maxTranscriptInput = 50000

// CreateCallInput is the payload for creating a call
type CreateCallInput struct {
	RepID          uuid.UUID `json:"rep_id" validate:"required"`
	Title          string    `json:"title" validate:"required,max=500"`
	OccurredAt     time.Time `json:"occurred_at" validate:"required"`
	TranscriptText string    `json:"transcript_text" validate:"required"`
	Source         string    `json:"source" validate:"required,oneof=paste upload"`
}

// Service manages call records on behalf of the analysis engine's callers
type Service interface {
	CreateCall(ctx context.Context, userID uuid.UUID, input CreateCallInput) (*entities.Call, error)
	GetCall(ctx context.Context, id, userID uuid.UUID) (*entities.Call, error)
	ListCalls(ctx context.Context, userID uuid.UUID, filter *repositories.CallFilters) ([]*entities.Call, error)
	DeleteCall(ctx context.Context, id, userID uuid.UUID) error
}

type callsService struct {
	callRepo  repositories.CallRepository
	repRepo   repositories.RepRepository
	pipeline  *analysis.Pipeline
	validator *pkgvalidator.CustomValidator
	logger    *zap.Logger
}

// NewService constructs the calls service
func NewService(
	callRepo repositories.CallRepository,
	repRepo repositories.RepRepository,
	pipeline *analysis.Pipeline,
	logger *zap.Logger,
) Service {
	return &callsService{
		callRepo:  callRepo,
		repRepo:   repRepo,
		pipeline:  pipeline,
		validator: pkgvalidator.New(),
		logger:    logger,
	}
}

// CreateCall validates and stores a new call. When a live provider is
// configured the call is auto-classified (category and tags) from a
// summarize pass; classification failures are logged and ignored.
func (s *callsService) CreateCall(ctx context.Context, userID uuid.UUID, input CreateCallInput) (*entities.Call, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, apperrors.ErrInvalidArgument(err.Error())
	}

	if strings.TrimSpace(input.TranscriptText) == "" {
		return nil, apperrors.ErrInvalidArgument("Transcript text is required")
	}
	if len(input.TranscriptText) > maxTranscriptInput {
		return nil, apperrors.ErrInvalidArgument("Transcript is too long (max 50,000 characters)")
	}

	rep, err := s.repRepo.FindByID(ctx, input.RepID, userID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("find rep", err)
	}
	if rep == nil {
		return nil, apperrors.ErrRepNotFound(input.RepID.String())
	}

	call := entities.NewCall(userID, input.RepID, input.Title, input.TranscriptText, input.OccurredAt, input.Source)
	call.Rep = rep

	// Best-effort auto-classification; only with a live provider, since
	// the demo classification is a fixed template
	if s.pipeline != nil && s.pipeline.Available() {
		summary, err := s.pipeline.Summarize(ctx, call)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("failed to auto-classify call", zap.Error(err))
			}
		} else {
			call.Category = summary.Category
			call.Tags = entities.TagsJSON(summary.Tags)
		}
	}

	call.Rep = nil
	if err := s.callRepo.Create(ctx, call); err != nil {
		return nil, apperrors.ErrDBQueryFailed("create call", err)
	}
	call.Rep = rep

	if s.logger != nil {
		s.logger.Info("call created",
			zap.String("call_id", call.ID.String()),
			zap.String("rep_id", call.RepID.String()),
			zap.Int("transcript_chars", len(call.TranscriptText)),
		)
	}

	return call, nil
}

func (s *callsService) GetCall(ctx context.Context, id, userID uuid.UUID) (*entities.Call, error) {
	call, err := s.callRepo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("find call", err)
	}
	if call == nil {
		return nil, apperrors.ErrCallNotFound(id.String())
	}
	return call, nil
}

func (s *callsService) ListCalls(ctx context.Context, userID uuid.UUID, filter *repositories.CallFilters) ([]*entities.Call, error) {
	calls, err := s.callRepo.FindByUserID(ctx, userID, filter)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("list calls", err)
	}
	return calls, nil
}

func (s *callsService) DeleteCall(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.callRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, entities.ErrCallNotFound) {
			return apperrors.ErrCallNotFound(id.String())
		}
		return apperrors.ErrDBQueryFailed("delete call", err)
	}
	return nil
}
