package reps

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/callcoachhq/call-coach/errors"
	"github.com/callcoachhq/call-coach/internal/domain/entities"
	"github.com/callcoachhq/call-coach/internal/domain/repositories"
	pkgvalidator "github.com/callcoachhq/call-coach/pkg/validator"
)

// CreateRepInput is the payload for creating a rep
type CreateRepInput struct {
	Name      string `json:"name" validate:"required,max=255"`
	RoleTitle string `json:"role_title" validate:"required,max=255"`
	Region    string `json:"region" validate:"max=100"`
}

// UpdateRepInput is the payload for updating a rep; empty fields are kept
type UpdateRepInput struct {
	Name      string `json:"name" validate:"max=255"`
	RoleTitle string `json:"role_title" validate:"max=255"`
	Region    string `json:"region" validate:"max=100"`
}

// Service manages the roster of reps whose calls get analyzed
type Service interface {
	CreateRep(ctx context.Context, userID uuid.UUID, input CreateRepInput) (*entities.Rep, error)
	GetRep(ctx context.Context, id, userID uuid.UUID) (*entities.Rep, error)
	ListReps(ctx context.Context, userID uuid.UUID) ([]*entities.Rep, error)
	UpdateRep(ctx context.Context, id, userID uuid.UUID, input UpdateRepInput) (*entities.Rep, error)
	DeleteRep(ctx context.Context, id, userID uuid.UUID) error
}

type repsService struct {
	repRepo   repositories.RepRepository
	validator *pkgvalidator.CustomValidator
	logger    *zap.Logger
}

// NewService constructs the reps service
func NewService(repRepo repositories.RepRepository, logger *zap.Logger) Service {
	return &repsService{
		repRepo:   repRepo,
		validator: pkgvalidator.New(),
		logger:    logger,
	}
}

func (s *repsService) CreateRep(ctx context.Context, userID uuid.UUID, input CreateRepInput) (*entities.Rep, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, apperrors.ErrInvalidArgument(err.Error())
	}

	rep := entities.NewRep(userID, strings.TrimSpace(input.Name), strings.TrimSpace(input.RoleTitle), strings.TrimSpace(input.Region))
	if err := s.repRepo.Create(ctx, rep); err != nil {
		return nil, apperrors.ErrDBQueryFailed("create rep", err)
	}

	if s.logger != nil {
		s.logger.Info("rep created",
			zap.String("rep_id", rep.ID.String()),
			zap.String("name", rep.Name),
		)
	}

	return rep, nil
}

func (s *repsService) GetRep(ctx context.Context, id, userID uuid.UUID) (*entities.Rep, error) {
	rep, err := s.repRepo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("find rep", err)
	}
	if rep == nil {
		return nil, apperrors.ErrRepNotFound(id.String())
	}
	return rep, nil
}

func (s *repsService) ListReps(ctx context.Context, userID uuid.UUID) ([]*entities.Rep, error) {
	reps, err := s.repRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("list reps", err)
	}
	return reps, nil
}

func (s *repsService) UpdateRep(ctx context.Context, id, userID uuid.UUID, input UpdateRepInput) (*entities.Rep, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, apperrors.ErrInvalidArgument(err.Error())
	}

	rep, err := s.GetRep(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		rep.Name = name
	}
	if role := strings.TrimSpace(input.RoleTitle); role != "" {
		rep.RoleTitle = role
	}
	if region := strings.TrimSpace(input.Region); region != "" {
		rep.Region = region
	}

	if err := s.repRepo.Update(ctx, rep); err != nil {
		return nil, apperrors.ErrDBQueryFailed("update rep", err)
	}
	return rep, nil
}

func (s *repsService) DeleteRep(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.repRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, entities.ErrRepNotFound) {
			return apperrors.ErrRepNotFound(id.String())
		}
		return apperrors.ErrDBQueryFailed("delete rep", err)
	}
	return nil
}
