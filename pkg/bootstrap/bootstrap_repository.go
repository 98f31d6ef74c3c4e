package bootstrap

import (
	"context"

	"freezer-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	BootstrapRepository interface {
		// SeedUser atomically claims the per-user bootstrap marker and, when
		// the claim succeeds, writes the default freezers and seed items in
		// the same transaction. Returns false without touching anything when
		// the marker already exists.
		SeedUser(ctx context.Context, marker *entities.UserBootstrap, freezers []*entities.Freezer, items []*entities.FoodItem) (bool, error)
	}

	bootstrapRepository struct {
		db *gorm.DB
	}
)

func NewBootstrapRepository(db *gorm.DB) BootstrapRepository {
	return &bootstrapRepository{db: db}
}

func (r *bootstrapRepository) SeedUser(ctx context.Context, marker *entities.UserBootstrap, freezers []*entities.Freezer, items []*entities.FoodItem) (bool, error) {
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Single-winner gate: concurrent first requests race on this insert
		// and exactly one of them seeds.
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(marker)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		if err := tx.Create(&freezers).Error; err != nil {
			return err
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		created = true
		return nil
	})

	return created, err
}
