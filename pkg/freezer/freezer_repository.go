package freezer

import (
	"context"
	"time"

	"freezer-backend/entities"

	"gorm.io/gorm"
)

type (
	FreezerRepository interface {
		GetFreezersByUser(ctx context.Context, userID string) ([]*entities.Freezer, error)
		GetFreezer(ctx context.Context, userID, freezerID string) (*entities.Freezer, error)
		RenameFreezer(ctx context.Context, userID, freezerID, name string, now time.Time) (bool, error)
	}

	freezerRepository struct {
		db *gorm.DB
	}
)

func NewFreezerRepository(db *gorm.DB) FreezerRepository {
	return &freezerRepository{db: db}
}

func (r *freezerRepository) GetFreezersByUser(ctx context.Context, userID string) ([]*entities.Freezer, error) {
	var freezers []*entities.Freezer
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("position asc").
		Find(&freezers).Error; err != nil {
		return nil, err
	}
	return freezers, nil
}

func (r *freezerRepository) GetFreezer(ctx context.Context, userID, freezerID string) (*entities.Freezer, error) {
	var freezer entities.Freezer
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND freezer_id = ?", userID, freezerID).
		First(&freezer).Error; err != nil {
		return nil, err
	}
	return &freezer, nil
}

// RenameFreezer updates one row directly; no list rewrite, so concurrent
// renames of different freezers in the same set cannot clobber each other.
func (r *freezerRepository) RenameFreezer(ctx context.Context, userID, freezerID, name string, now time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&entities.Freezer{}).
		Where("user_id = ? AND freezer_id = ?", userID, freezerID).
		Updates(map[string]interface{}{"name": name, "updated_at": now})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
