package food

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"freezer-backend/domain"
	"freezer-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeFoodRepository struct {
	items map[string]*entities.FoodItem
}

func newFakeFoodRepository() *fakeFoodRepository {
	return &fakeFoodRepository{items: make(map[string]*entities.FoodItem)}
}

func (f *fakeFoodRepository) AddFoodItem(_ context.Context, item *entities.FoodItem) error {
	f.items[item.ID.String()] = item
	return nil
}

func (f *fakeFoodRepository) GetFoodItemByID(_ context.Context, id string) (*entities.FoodItem, error) {
	// The real column is a uuid; a malformed id is a driver error there, not
	// a miss.
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.New("invalid input syntax for type uuid")
	}
	item, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakeFoodRepository) UpdateFoodItem(_ context.Context, item *entities.FoodItem) error {
	f.items[item.ID.String()] = item
	return nil
}

func (f *fakeFoodRepository) DeleteFoodItem(_ context.Context, id string) error {
	delete(f.items, id)
	return nil
}

func (f *fakeFoodRepository) GetFoodItems(_ context.Context, userID string, freezerID string) ([]*entities.FoodItem, error) {
	var out []*entities.FoodItem
	for _, item := range f.items {
		if item.UserID != userID {
			continue
		}
		if freezerID != "" && item.FreezerID != freezerID {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

type fakeFreezerRepository struct {
	known map[string][]string // userID -> freezer slugs
}

func (f *fakeFreezerRepository) GetFreezersByUser(_ context.Context, userID string) ([]*entities.Freezer, error) {
	var out []*entities.Freezer
	for _, id := range f.known[userID] {
		out = append(out, &entities.Freezer{UserID: userID, FreezerID: id})
	}
	return out, nil
}

func (f *fakeFreezerRepository) GetFreezer(_ context.Context, userID, freezerID string) (*entities.Freezer, error) {
	for _, id := range f.known[userID] {
		if id == freezerID {
			return &entities.Freezer{UserID: userID, FreezerID: freezerID}, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFreezerRepository) RenameFreezer(context.Context, string, string, string, time.Time) (bool, error) {
	return false, nil
}

type fakeBootstrapService struct {
	freezers *fakeFreezerRepository
	seeded   map[string]bool
}

func (b *fakeBootstrapService) EnsureUserInitialized(_ context.Context, userID string) (bool, error) {
	if b.seeded[userID] {
		return false, nil
	}
	b.seeded[userID] = true
	if _, ok := b.freezers.known[userID]; !ok {
		b.freezers.known[userID] = []string{"freezer1", "freezer2"}
	}
	return true, nil
}

type fakeS3 struct {
	uploads []string
}

func (f *fakeS3) UploadFile(_ context.Context, _ *multipart.FileHeader, key string) (string, error) {
	f.uploads = append(f.uploads, key)
	return "https://bucket.s3.test.amazonaws.com/" + key, nil
}

func newTestService() (FoodService, *fakeS3) {
	s3 := &fakeS3{}
	freezers := &fakeFreezerRepository{known: map[string][]string{
		"user-1": {"freezer1", "freezer2"},
		"user-2": {"freezer1"},
	}}
	boot := &fakeBootstrapService{freezers: freezers, seeded: make(map[string]bool)}
	return NewFoodService(newFakeFoodRepository(), freezers, boot, s3), s3
}

func str(s string) *string { return &s }

func TestAddFoodItemDefaults(t *testing.T) {
	svc, _ := newTestService()

	before := time.Now()
	res, err := svc.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:        "Bread",
		Description: "Sourdough",
		FreezerID:   "freezer1",
	}, "user-1")
	if err != nil {
		t.Fatalf("AddFoodItem: %v", err)
	}

	if res.UserID != "user-1" {
		t.Errorf("userId = %q, want user-1", res.UserID)
	}
	if res.FreezerID != "freezer1" {
		t.Errorf("freezerId = %q, want freezer1", res.FreezerID)
	}
	if res.ItemType != domain.FoodTypeOtro {
		t.Errorf("itemType = %q, want %q", res.ItemType, domain.FoodTypeOtro)
	}
	if res.FreezerBox != "" {
		t.Errorf("freezerBox = %q, want empty", res.FreezerBox)
	}
	if res.FrozenDate < before.UnixMilli() || res.FrozenDate > time.Now().UnixMilli() {
		t.Errorf("frozenDate %d not close to now", res.FrozenDate)
	}
}

func TestAddFoodItemFrozenDateRoundTrip(t *testing.T) {
	svc, _ := newTestService()

	frozen := time.Date(2026, time.February, 14, 18, 30, 0, 0, time.UTC)
	res, err := svc.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:        "Croquetas",
		Description: "De jamon",
		FreezerID:   "freezer2",
		FrozenDate:  frozen.Format(time.RFC3339),
	}, "user-1")
	if err != nil {
		t.Fatalf("AddFoodItem: %v", err)
	}
	if res.FrozenDate != frozen.UnixMilli() {
		t.Errorf("frozenDate = %d, want %d", res.FrozenDate, frozen.UnixMilli())
	}

	got, err := svc.GetFoodItemByID(context.Background(), res.ID, "user-1")
	if err != nil {
		t.Fatalf("GetFoodItemByID: %v", err)
	}
	if got.FrozenDate != frozen.UnixMilli() {
		t.Errorf("fetched frozenDate = %d, want %d", got.FrozenDate, frozen.UnixMilli())
	}
}

func TestAddFoodItemValidation(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name string
		req  domain.AddFoodItemRequest
		want error
	}{
		{"blank name", domain.AddFoodItemRequest{Name: "   ", Description: "d", FreezerID: "freezer1"}, domain.ErrNameRequired},
		{"blank description", domain.AddFoodItemRequest{Name: "n", Description: " ", FreezerID: "freezer1"}, domain.ErrDescriptionRequired},
		{"blank box", domain.AddFoodItemRequest{Name: "n", Description: "d", FreezerID: "freezer1", FreezerBox: "  "}, domain.ErrInvalidFreezerBox},
		{"unknown type", domain.AddFoodItemRequest{Name: "n", Description: "d", FreezerID: "freezer1", ItemType: "sushi"}, domain.ErrInvalidItemType},
		{"bad date", domain.AddFoodItemRequest{Name: "n", Description: "d", FreezerID: "freezer1", FrozenDate: "yesterday"}, domain.ErrInvalidFrozenDate},
		{"unknown freezer", domain.AddFoodItemRequest{Name: "n", Description: "d", FreezerID: "freezer9"}, domain.ErrFreezerNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.AddFoodItem(context.Background(), tt.req, "user-1"); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAddFoodItemEpochMillisDate(t *testing.T) {
	svc, _ := newTestService()

	frozen := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	res, err := svc.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:        "Helado",
		Description: "Vainilla",
		FreezerID:   "freezer1",
		FrozenDate:  "1772323200000",
	}, "user-1")
	if err != nil {
		t.Fatalf("AddFoodItem: %v", err)
	}
	if res.FrozenDate != frozen.UnixMilli() {
		t.Errorf("frozenDate = %d, want %d", res.FrozenDate, frozen.UnixMilli())
	}
}

func seedItem(svc FoodService, userID string) domain.FoodItemResponse {
	res, err := svc.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:        "Tupper lentejas",
		Description: "Guiso del domingo",
		FreezerID:   "freezer1",
		FreezerBox:  "Primer cajon",
		ItemType:    "tupper",
	}, userID)
	if err != nil {
		panic(err)
	}
	return res
}

func TestUpdateFoodItemPartial(t *testing.T) {
	svc, _ := newTestService()
	created := seedItem(svc, "user-1")

	res, err := svc.UpdateFoodItem(context.Background(), created.ID, domain.UpdateFoodItemRequest{
		Name: str("Tupper garbanzos"),
	}, "user-1")
	if err != nil {
		t.Fatalf("UpdateFoodItem: %v", err)
	}

	if res.Name != "Tupper garbanzos" {
		t.Errorf("name = %q", res.Name)
	}
	if res.Description != created.Description {
		t.Errorf("description changed: %q", res.Description)
	}
	if res.FreezerBox != created.FreezerBox {
		t.Errorf("freezerBox changed: %q", res.FreezerBox)
	}
	if res.ItemType != created.ItemType {
		t.Errorf("itemType changed: %q", res.ItemType)
	}
	if res.CreatedAt != created.CreatedAt {
		t.Errorf("createdAt changed: %d", res.CreatedAt)
	}
	if res.UpdatedAt < created.UpdatedAt {
		t.Errorf("updatedAt not re-stamped")
	}
}

func TestUpdateFoodItemClearToDefault(t *testing.T) {
	svc, _ := newTestService()
	created := seedItem(svc, "user-1")

	res, err := svc.UpdateFoodItem(context.Background(), created.ID, domain.UpdateFoodItemRequest{
		ItemType: str(""),
	}, "user-1")
	if err != nil {
		t.Fatalf("UpdateFoodItem: %v", err)
	}
	if res.ItemType != domain.FoodTypeOtro {
		t.Errorf("itemType = %q, want %q", res.ItemType, domain.FoodTypeOtro)
	}
}

func TestUpdateFoodItemRejections(t *testing.T) {
	svc, _ := newTestService()
	created := seedItem(svc, "user-1")

	tests := []struct {
		name string
		req  domain.UpdateFoodItemRequest
		want error
	}{
		{"empty patch", domain.UpdateFoodItemRequest{}, domain.ErrEmptyUpdate},
		{"blank box only", domain.UpdateFoodItemRequest{FreezerBox: str("")}, domain.ErrEmptyUpdate},
		{"empty name", domain.UpdateFoodItemRequest{Name: str("")}, domain.ErrNameRequired},
		{"empty description", domain.UpdateFoodItemRequest{Description: str(" ")}, domain.ErrDescriptionRequired},
		{"unknown type", domain.UpdateFoodItemRequest{ItemType: str("paella")}, domain.ErrInvalidItemType},
		{"bad date", domain.UpdateFoodItemRequest{FrozenDate: str("soon")}, domain.ErrInvalidFrozenDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.UpdateFoodItem(context.Background(), created.ID, tt.req, "user-1"); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMalformedItemIDIsNotFound(t *testing.T) {
	svc, _ := newTestService()

	for _, id := range []string{"item-9", "abc123", "not_a_uuid"} {
		if _, err := svc.GetFoodItemByID(context.Background(), id, "user-1"); !errors.Is(err, domain.ErrFoodItemNotFound) {
			t.Errorf("get %q: got %v, want ErrFoodItemNotFound", id, err)
		}
		if _, err := svc.UpdateFoodItem(context.Background(), id, domain.UpdateFoodItemRequest{Name: str("x")}, "user-1"); !errors.Is(err, domain.ErrFoodItemNotFound) {
			t.Errorf("update %q: got %v, want ErrFoodItemNotFound", id, err)
		}
		if _, err := svc.DeleteFoodItem(context.Background(), id, "user-1"); !errors.Is(err, domain.ErrFoodItemNotFound) {
			t.Errorf("delete %q: got %v, want ErrFoodItemNotFound", id, err)
		}
	}
}

func TestAddFoodItemFirstContactSeeds(t *testing.T) {
	svc, _ := newTestService()

	// user-3 has never been seen; creation must seed the default freezers
	// before the freezer reference check runs.
	res, err := svc.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:        "Merluza",
		Description: "Filetes del mercado",
		FreezerID:   "freezer1",
	}, "user-3")
	if err != nil {
		t.Fatalf("AddFoodItem: %v", err)
	}
	if res.UserID != "user-3" {
		t.Errorf("userId = %q, want user-3", res.UserID)
	}

	items, err := svc.GetFoodItems(context.Background(), "user-3", "")
	if err != nil {
		t.Fatalf("GetFoodItems: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("got %d items, want 1", len(items))
	}
}

func TestOwnershipEnforced(t *testing.T) {
	svc, _ := newTestService()
	created := seedItem(svc, "user-1")

	if _, err := svc.GetFoodItemByID(context.Background(), created.ID, "user-2"); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("get: got %v, want ErrForbidden", err)
	}
	if _, err := svc.UpdateFoodItem(context.Background(), created.ID, domain.UpdateFoodItemRequest{Name: str("x")}, "user-2"); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("update: got %v, want ErrForbidden", err)
	}
	if _, err := svc.DeleteFoodItem(context.Background(), created.ID, "user-2"); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("delete: got %v, want ErrForbidden", err)
	}

	// The record must be untouched after the rejected calls.
	got, err := svc.GetFoodItemByID(context.Background(), created.ID, "user-1")
	if err != nil {
		t.Fatalf("GetFoodItemByID: %v", err)
	}
	if got.Name != created.Name {
		t.Errorf("record modified by rejected update: %q", got.Name)
	}
}

func TestDeleteThenFetchNotFound(t *testing.T) {
	svc, _ := newTestService()
	created := seedItem(svc, "user-1")

	res, err := svc.DeleteFoodItem(context.Background(), created.ID, "user-1")
	if err != nil {
		t.Fatalf("DeleteFoodItem: %v", err)
	}
	if res.ID != created.ID {
		t.Errorf("deleted id = %q, want %q", res.ID, created.ID)
	}

	if _, err := svc.GetFoodItemByID(context.Background(), created.ID, "user-1"); !errors.Is(err, domain.ErrFoodItemNotFound) {
		t.Errorf("got %v, want ErrFoodItemNotFound", err)
	}
}

func TestGetFoodItemsFilter(t *testing.T) {
	svc, _ := newTestService()
	seedItem(svc, "user-1")

	items, err := svc.GetFoodItems(context.Background(), "user-1", "freezer1")
	if err != nil {
		t.Fatalf("GetFoodItems: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("got %d items, want 1", len(items))
	}

	// An unmatched filter is an empty result, never an error.
	items, err = svc.GetFoodItems(context.Background(), "user-1", "freezer2")
	if err != nil {
		t.Fatalf("GetFoodItems(freezer2): %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
}

func TestUploadFoodPhoto(t *testing.T) {
	svc, s3 := newTestService()
	created := seedItem(svc, "user-1")

	photo := &multipart.FileHeader{Filename: "tupper.jpg"}
	res, err := svc.UploadFoodPhoto(context.Background(), created.ID, photo, "user-1")
	if err != nil {
		t.Fatalf("UploadFoodPhoto: %v", err)
	}
	if res.PhotoURL == "" {
		t.Error("photoUrl empty after upload")
	}
	if len(s3.uploads) != 1 {
		t.Errorf("s3 uploads = %d, want 1", len(s3.uploads))
	}

	bad := &multipart.FileHeader{Filename: "notes.txt"}
	if _, err := svc.UploadFoodPhoto(context.Background(), created.ID, bad, "user-1"); !errors.Is(err, domain.ErrInvalidPhotoFormat) {
		t.Errorf("got %v, want ErrInvalidPhotoFormat", err)
	}
}
