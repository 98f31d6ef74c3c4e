package bootstrap

import (
	"context"
	"time"

	"freezer-backend/domain"
	"freezer-backend/entities"
	"freezer-backend/internal/utils/mailing"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	// BootstrapService creates the default data set for a newly seen user.
	// Idempotent: the first call for a user seeds, every later call is a
	// no-op returning created=false.
	BootstrapService interface {
		EnsureUserInitialized(ctx context.Context, userID string) (bool, error)
	}

	bootstrapService struct {
		bootstrapRepository BootstrapRepository
	}
)

func NewBootstrapService(bootstrapRepository BootstrapRepository) BootstrapService {
	return &bootstrapService{bootstrapRepository: bootstrapRepository}
}

func (s *bootstrapService) EnsureUserInitialized(ctx context.Context, userID string) (bool, error) {
	now := time.Now()

	marker := &entities.UserBootstrap{
		UserID:   userID,
		SeededAt: now,
	}

	freezers := make([]*entities.Freezer, 0, len(domain.DefaultFreezers))
	items := make([]*entities.FoodItem, 0, len(domain.DefaultFreezers))
	for i, def := range domain.DefaultFreezers {
		freezers = append(freezers, &entities.Freezer{
			ID:        uuid.New(),
			UserID:    userID,
			FreezerID: def.ID,
			Name:      def.Name,
			Position:  i + 1,
			Timestamp: entities.Timestamp{CreatedAt: now, UpdatedAt: now},
		})

		items = append(items, &entities.FoodItem{
			ID:          uuid.New(),
			UserID:      userID,
			FreezerID:   def.ID,
			Name:        domain.SeedFoodItem.Name,
			Description: domain.SeedFoodItem.Description,
			FreezerBox:  domain.SeedFoodItem.FreezerBox,
			ItemType:    domain.SeedFoodItem.ItemType,
			FrozenDate:  domain.SeedFoodItem.FrozenDate,
			IsSeed:      true,
			Timestamp:   entities.Timestamp{CreatedAt: now, UpdatedAt: now},
		})
	}

	created, err := s.bootstrapRepository.SeedUser(ctx, marker, freezers, items)
	if err != nil {
		return false, err
	}

	if created {
		// Ops notification only; seeding already committed.
		if err := mailing.SendNewUserNotification(userID); err != nil {
			log.Warnf("bootstrap: new user mail for %s failed: %v", userID, err)
		}
	}

	return created, nil
}
