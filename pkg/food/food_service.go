package food

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"freezer-backend/domain"
	"freezer-backend/entities"
	"freezer-backend/internal/utils/storage"
	"freezer-backend/pkg/bootstrap"
	"freezer-backend/pkg/freezer"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) (domain.FoodItemResponse, error)
		DeleteFoodItem(ctx context.Context, id string, userID string) (domain.DeleteFoodItemResponse, error)
		GetFoodItems(ctx context.Context, userID string, freezerID string) ([]domain.FoodItemResponse, error)
		GetFoodItemByID(ctx context.Context, id string, userID string) (domain.FoodItemResponse, error)
		UploadFoodPhoto(ctx context.Context, id string, photo *multipart.FileHeader, userID string) (domain.FoodItemResponse, error)
	}

	foodService struct {
		foodRepository    FoodRepository
		freezerRepository freezer.FreezerRepository
		bootstrapService  bootstrap.BootstrapService
		s3                storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, freezerRepository freezer.FreezerRepository, bootstrapService bootstrap.BootstrapService, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository:    foodRepository,
		freezerRepository: freezerRepository,
		bootstrapService:  bootstrapService,
		s3:                s3,
	}
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (domain.FoodItemResponse, error) {
	// First contact may land here before any freezer read; the default pair
	// must exist before the freezer reference is checked.
	if _, err := s.bootstrapService.EnsureUserInitialized(ctx, userID); err != nil {
		return domain.FoodItemResponse{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.FoodItemResponse{}, domain.ErrNameRequired
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return domain.FoodItemResponse{}, domain.ErrDescriptionRequired
	}

	freezerBox := ""
	if req.FreezerBox != "" {
		freezerBox = strings.TrimSpace(req.FreezerBox)
		if freezerBox == "" {
			return domain.FoodItemResponse{}, domain.ErrInvalidFreezerBox
		}
	}

	// Omitted category defaults silently; an unrecognized one is rejected.
	itemType := domain.FoodTypeOtro
	if req.ItemType != "" {
		if !domain.IsFoodType(req.ItemType) {
			return domain.FoodItemResponse{}, domain.ErrInvalidItemType
		}
		itemType = req.ItemType
	}

	now := time.Now()

	frozenDate := now
	if req.FrozenDate != "" {
		parsed, err := parseFrozenDate(req.FrozenDate)
		if err != nil {
			return domain.FoodItemResponse{}, err
		}
		frozenDate = parsed
	}

	// The freezer reference is checked at creation only; later renames do
	// not re-validate existing items.
	if _, err := s.freezerRepository.GetFreezer(ctx, userID, req.FreezerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodItemResponse{}, domain.ErrFreezerNotFound
		}
		return domain.FoodItemResponse{}, err
	}

	foodItem := &entities.FoodItem{
		ID:          uuid.New(),
		UserID:      userID,
		FreezerID:   req.FreezerID,
		Name:        name,
		Description: description,
		FreezerBox:  freezerBox,
		ItemType:    itemType,
		FrozenDate:  frozenDate,
		Timestamp:   entities.Timestamp{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) (domain.FoodItemResponse, error) {
	foodItem, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	changed := 0

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.FoodItemResponse{}, domain.ErrNameRequired
		}
		foodItem.Name = name
		changed++
	}

	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return domain.FoodItemResponse{}, domain.ErrDescriptionRequired
		}
		foodItem.Description = description
		changed++
	}

	// An empty freezerBox is ignored rather than rejected; the original
	// treats it as "leave as is".
	if req.FreezerBox != nil && *req.FreezerBox != "" {
		box := strings.TrimSpace(*req.FreezerBox)
		if box == "" {
			return domain.FoodItemResponse{}, domain.ErrInvalidFreezerBox
		}
		foodItem.FreezerBox = box
		changed++
	}

	if req.ItemType != nil {
		if *req.ItemType == "" {
			foodItem.ItemType = domain.FoodTypeOtro
		} else if !domain.IsFoodType(*req.ItemType) {
			return domain.FoodItemResponse{}, domain.ErrInvalidItemType
		} else {
			foodItem.ItemType = *req.ItemType
		}
		changed++
	}

	if req.FrozenDate != nil && *req.FrozenDate != "" {
		frozenDate, err := parseFrozenDate(*req.FrozenDate)
		if err != nil {
			return domain.FoodItemResponse{}, err
		}
		foodItem.FrozenDate = frozenDate
		changed++
	}

	if changed == 0 {
		return domain.FoodItemResponse{}, domain.ErrEmptyUpdate
	}

	foodItem.UpdatedAt = time.Now()

	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id string, userID string) (domain.DeleteFoodItemResponse, error) {
	if _, err := s.getOwnedItem(ctx, id, userID); err != nil {
		return domain.DeleteFoodItemResponse{}, err
	}

	if err := s.foodRepository.DeleteFoodItem(ctx, id); err != nil {
		return domain.DeleteFoodItemResponse{}, err
	}

	return domain.DeleteFoodItemResponse{ID: id}, nil
}

func (s *foodService) GetFoodItems(ctx context.Context, userID string, freezerID string) ([]domain.FoodItemResponse, error) {
	if _, err := s.bootstrapService.EnsureUserInitialized(ctx, userID); err != nil {
		return nil, err
	}

	foodItems, err := s.foodRepository.GetFoodItems(ctx, userID, freezerID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		res = append(res, toFoodItemResponse(item))
	}
	return res, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string, userID string) (domain.FoodItemResponse, error) {
	foodItem, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}
	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) UploadFoodPhoto(ctx context.Context, id string, photo *multipart.FileHeader, userID string) (domain.FoodItemResponse, error) {
	foodItem, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	ext := strings.ToLower(filepath.Ext(photo.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return domain.FoodItemResponse{}, domain.ErrInvalidPhotoFormat
	}

	key := fmt.Sprintf("food-photos/%s/%s%s", userID, foodItem.ID.String(), ext)
	url, err := s.s3.UploadFile(ctx, photo, key)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	foodItem.PhotoURL = url
	foodItem.UpdatedAt = time.Now()

	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) getOwnedItem(ctx context.Context, id string, userID string) (*entities.FoodItem, error) {
	// The id column is a uuid; anything else cannot name an item, and letting
	// it through would surface as a driver error instead of a miss.
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrFoodItemNotFound
	}

	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodItemNotFound
		}
		return nil, err
	}

	if foodItem.UserID != userID {
		return nil, domain.ErrForbidden
	}

	return foodItem, nil
}

// parseFrozenDate accepts epoch milliseconds, RFC 3339, or a bare date.
func parseFrozenDate(value string) (time.Time, error) {
	if millis, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.UnixMilli(millis).UTC(), nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.ErrInvalidFrozenDate
}

func toFoodItemResponse(item *entities.FoodItem) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:          item.ID.String(),
		UserID:      item.UserID,
		FreezerID:   item.FreezerID,
		Name:        item.Name,
		Description: item.Description,
		FreezerBox:  item.FreezerBox,
		ItemType:    item.ItemType,
		FrozenDate:  item.FrozenDate.UnixMilli(),
		PhotoURL:    item.PhotoURL,
		IsSeed:      item.IsSeed,
		CreatedAt:   item.CreatedAt.UnixMilli(),
		UpdatedAt:   item.UpdatedAt.UnixMilli(),
	}
}
