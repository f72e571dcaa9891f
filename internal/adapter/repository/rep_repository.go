package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/callcoachhq/call-coach/internal/domain/entities"
	"github.com/callcoachhq/call-coach/internal/domain/repositories"
)

type repRepository struct {
	db *gorm.DB
}

// NewRepRepository creates a new rep repository backed by GORM
func NewRepRepository(db *gorm.DB) repositories.RepRepository {
	return &repRepository{db: db}
}

func (r *repRepository) Create(ctx context.Context, rep *entities.Rep) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *repRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entities.Rep, error) {
	var rep entities.Rep
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&rep).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *repRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Rep, error) {
	var reps []*entities.Rep
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reps).Error
	if err != nil {
		return nil, err
	}
	return reps, nil
}

func (r *repRepository) Update(ctx context.Context, rep *entities.Rep) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Rep{}).
		Where("id = ? AND user_id = ?", rep.ID, rep.UserID).
		Updates(map[string]interface{}{
			"name":       rep.Name,
			"role_title": rep.RoleTitle,
			"region":     rep.Region,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ErrRepNotFound
	}
	return nil
}

func (r *repRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Rep{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ErrRepNotFound
	}
	return nil
}
