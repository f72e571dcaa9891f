package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/callcoachhq/call-coach/internal/domain/entities"
	"github.com/callcoachhq/call-coach/internal/domain/repositories"
)

type callRepository struct {
	db *gorm.DB
}

// NewCallRepository creates a new call repository backed by GORM
func NewCallRepository(db *gorm.DB) repositories.CallRepository {
	return &callRepository{db: db}
}

func (r *callRepository) Create(ctx context.Context, call *entities.Call) error {
	return r.db.WithContext(ctx).Create(call).Error
}

func (r *callRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entities.Call, error) {
	var call entities.Call
	err := r.db.WithContext(ctx).
		Preload("Rep").
		Where("id = ? AND user_id = ?", id, userID).
		First(&call).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &call, nil
}

func (r *callRepository) FindByUserID(ctx context.Context, userID uuid.UUID, filter *repositories.CallFilters) ([]*entities.Call, error) {
	q := r.db.WithContext(ctx).
		Preload("Rep").
		Where("user_id = ?", userID)

	if filter != nil {
		if filter.RepID != nil {
			q = q.Where("rep_id = ?", *filter.RepID)
		}
		if filter.From != nil {
			q = q.Where("occurred_at >= ?", *filter.From)
		}
		if filter.To != nil {
			q = q.Where("occurred_at <= ?", *filter.To)
		}
		if filter.MinScore != nil {
			q = q.Where("(score->>'overall')::int >= ?", *filter.MinScore)
		}
		if filter.MaxScore != nil {
			q = q.Where("(score->>'overall')::int <= ?", *filter.MaxScore)
		}
	}

	var calls []*entities.Call
	if err := q.Order("occurred_at DESC").Find(&calls).Error; err != nil {
		return nil, err
	}
	return calls, nil
}

// UpdateSummary writes the summarize result fields in one statement so a
// failed operation leaves no partial write
func (r *callRepository) UpdateSummary(ctx context.Context, id, userID uuid.UUID, summary, coaching, category string, tags []string) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Call{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"ai_summary":  summary,
			"ai_coaching": coaching,
			"category":    category,
			"tags":        entities.TagsJSON(tags),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ErrCallNotFound
	}
	return nil
}

func (r *callRepository) UpdateScore(ctx context.Context, id, userID uuid.UUID, score *entities.Score) error {
	b, err := json.Marshal(score)
	if err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Model(&entities.Call{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("score", datatypes.JSON(b))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ErrCallNotFound
	}
	return nil
}

func (r *callRepository) UpdateObjections(ctx context.Context, id, userID uuid.UUID, objections []entities.Objection) error {
	if objections == nil {
		objections = []entities.Objection{}
	}
	b, err := json.Marshal(objections)
	if err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Model(&entities.Call{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("objections", datatypes.JSON(b))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ErrCallNotFound
	}
	return nil
}

func (r *callRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Call{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ErrCallNotFound
	}
	return nil
}
