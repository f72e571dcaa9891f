package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/callcoachhq/call-coach/errors"
	"github.com/callcoachhq/call-coach/internal/domain/entities"
	"github.com/callcoachhq/call-coach/internal/domain/repositories"
	"github.com/callcoachhq/call-coach/internal/infrastructure/cache"
)

// Service exposes the analysis entry points to the rest of the
// application. Each operation resolves the call, runs the pipeline and
// persists the result onto the call record; the three results are
// independently regenerable.
type Service interface {
	Summarize(ctx context.Context, callID, userID uuid.UUID) (*entities.Summary, error)
	Score(ctx context.Context, callID, userID uuid.UUID) (*entities.Score, error)
	DetectObjections(ctx context.Context, callID, userID uuid.UUID) ([]entities.Objection, error)
	Available() bool
}

type analysisService struct {
	callRepo repositories.CallRepository
	pipeline *Pipeline
	store    cache.Store
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewService constructs the analysis service. The store is optional and
// only memoizes demo-mode results; pass nil to disable.
func NewService(
	callRepo repositories.CallRepository,
	pipeline *Pipeline,
	store cache.Store,
	cacheTTL time.Duration,
	logger *zap.Logger,
) Service {
	return &analysisService{
		callRepo: callRepo,
		pipeline: pipeline,
		store:    store,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Available reports whether a live provider credential is configured
func (s *analysisService) Available() bool {
	return s.pipeline.Available()
}

func (s *analysisService) Summarize(ctx context.Context, callID, userID uuid.UUID) (*entities.Summary, error) {
	call, err := s.loadCall(ctx, callID, userID)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("analysis:summary:%s", callID)
	var cached entities.Summary
	if s.demoCacheGet(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	result, err := s.pipeline.Summarize(ctx, call)
	if err != nil {
		return nil, apperrors.ErrAISummaryFailed(err)
	}

	if err := s.callRepo.UpdateSummary(ctx, callID, userID, result.Summary, result.CoachingNotes, result.Category, result.Tags); err != nil {
		return nil, apperrors.ErrDBQueryFailed("update summary", err)
	}

	if s.logger != nil {
		s.logger.Info("call summarized",
			zap.String("call_id", callID.String()),
			zap.Bool("is_sales_call", result.IsSalesCall),
			zap.Bool("live_provider", s.pipeline.Available()),
		)
	}

	s.demoCacheSet(ctx, cacheKey, result)
	return result, nil
}

func (s *analysisService) Score(ctx context.Context, callID, userID uuid.UUID) (*entities.Score, error) {
	call, err := s.loadCall(ctx, callID, userID)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("analysis:score:%s", callID)
	var cached entities.Score
	if s.demoCacheGet(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	result, err := s.pipeline.Score(ctx, call)
	if err != nil {
		return nil, apperrors.ErrAIScoreFailed(err)
	}

	if err := s.callRepo.UpdateScore(ctx, callID, userID, result); err != nil {
		return nil, apperrors.ErrDBQueryFailed("update score", err)
	}

	if s.logger != nil {
		s.logger.Info("call scored",
			zap.String("call_id", callID.String()),
			zap.Int("overall", result.Overall),
			zap.Bool("is_sales_call", result.IsSalesCall),
		)
	}

	s.demoCacheSet(ctx, cacheKey, result)
	return result, nil
}

func (s *analysisService) DetectObjections(ctx context.Context, callID, userID uuid.UUID) ([]entities.Objection, error) {
	call, err := s.loadCall(ctx, callID, userID)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("analysis:objections:%s", callID)
	var cached []entities.Objection
	if s.demoCacheGet(ctx, cacheKey, &cached) {
		return cached, nil
	}

	result, err := s.pipeline.DetectObjections(ctx, call)
	if err != nil {
		return nil, apperrors.ErrAIObjectionsFailed(err)
	}

	if err := s.callRepo.UpdateObjections(ctx, callID, userID, result); err != nil {
		return nil, apperrors.ErrDBQueryFailed("update objections", err)
	}

	if s.logger != nil {
		s.logger.Info("objections detected",
			zap.String("call_id", callID.String()),
			zap.Int("count", len(result)),
		)
	}

	s.demoCacheSet(ctx, cacheKey, result)
	return result, nil
}

func (s *analysisService) loadCall(ctx context.Context, callID, userID uuid.UUID) (*entities.Call, error) {
	call, err := s.callRepo.FindByID(ctx, callID, userID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("find call", err)
	}
	if call == nil {
		return nil, apperrors.ErrCallNotFound(callID.String())
	}
	return call, nil
}

// demoCacheGet reads a memoized demo-mode result. Live results are never
// cached: a configured provider may legitimately produce a new answer.
func (s *analysisService) demoCacheGet(ctx context.Context, key string, out interface{}) bool {
	if s.store == nil || s.pipeline.Available() {
		return false
	}
	val, ok, err := s.store.Get(ctx, key)
	if err != nil || !ok {
		return false
	}
	return json.Unmarshal([]byte(val), out) == nil
}

func (s *analysisService) demoCacheSet(ctx context.Context, key string, value interface{}) {
	if s.store == nil || s.pipeline.Available() {
		return
	}
	b, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.store.Set(ctx, key, string(b), s.cacheTTL); err != nil && s.logger != nil {
		s.logger.Warn("failed to cache analysis result", zap.String("key", key), zap.Error(err))
	}
}
