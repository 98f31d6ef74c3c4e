package domain

import "errors"

// FoodTypeValues is the fixed item category enumeration. FoodTypeOtro is the
// catch-all applied when no category is supplied.
var FoodTypeValues = []string{
	"pollo", "carne", "verdura", "pescado", "hielo", "bebida", "tupper", "pan", "otro",
}

const FoodTypeOtro = "otro"

func IsFoodType(value string) bool {
	for _, v := range FoodTypeValues {
		if v == value {
			return true
		}
	}
	return false
}

var (
	MessageSuccessAddFoodItem    = "item created successfully"
	MessageSuccessUpdateFoodItem = "item updated successfully"
	MessageSuccessDeleteFoodItem = "item deleted successfully"
	MessageSuccessGetFoodItems   = "items retrieved successfully"
	MessageSuccessGetFoodItem    = "item retrieved successfully"
	MessageSuccessUploadPhoto    = "item photo uploaded successfully"
	MessageNoFoodItems           = "no items found"

	MessageFailedAddFoodItem    = "failed to add item"
	MessageFailedUpdateFoodItem = "failed to update item"
	MessageFailedDeleteFoodItem = "failed to delete item"
	MessageFailedGetFoodItems   = "failed to retrieve items"
	MessageFailedUploadPhoto    = "failed to upload item photo"

	ErrFoodItemNotFound    = errors.New("item not found")
	ErrNameRequired        = errors.New("item name is required and cannot be empty")
	ErrDescriptionRequired = errors.New("description is required and cannot be empty")
	ErrInvalidFreezerBox   = errors.New("freezer box location must be a non-empty string")
	ErrInvalidItemType     = errors.New("item type is not a known food type")
	ErrInvalidFrozenDate   = errors.New("frozen date must be a valid date")
	ErrEmptyUpdate         = errors.New("at least one field must be provided")
	ErrInvalidPhotoFormat  = errors.New("photo must be a jpeg, png or webp image")
)

type (
	AddFoodItemRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description" validate:"required"`
		FreezerID   string `json:"freezerId" validate:"required"`
		FreezerBox  string `json:"freezerBox" validate:"omitempty"`
		ItemType    string `json:"itemType" validate:"omitempty,oneof=pollo carne verdura pescado hielo bebida tupper pan otro"`
		FrozenDate  string `json:"frozenDate" validate:"omitempty"`
	}

	// UpdateFoodItemRequest carries a partial patch. Pointer fields tell a
	// field that was omitted apart from one sent as an empty string: an empty
	// freezerBox clears it, an empty itemType resets to the catch-all, while
	// empty name/description are rejected.
	UpdateFoodItemRequest struct {
		Name        *string `json:"name" validate:"omitempty"`
		Description *string `json:"description" validate:"omitempty"`
		FreezerBox  *string `json:"freezerBox" validate:"omitempty"`
		ItemType    *string `json:"itemType" validate:"omitempty,oneof=pollo carne verdura pescado hielo bebida tupper pan otro"`
		FrozenDate  *string `json:"frozenDate" validate:"omitempty"`
	}

	FoodItemResponse struct {
		ID          string `json:"id"`
		UserID      string `json:"userId"`
		FreezerID   string `json:"freezerId"`
		Name        string `json:"name"`
		Description string `json:"description"`
		FreezerBox  string `json:"freezerBox,omitempty"`
		ItemType    string `json:"itemType"`
		FrozenDate  int64  `json:"frozenDate"`
		PhotoURL    string `json:"photoUrl,omitempty"`
		IsSeed      bool   `json:"isSeed,omitempty"`
		CreatedAt   int64  `json:"createdAt"`
		UpdatedAt   int64  `json:"updatedAt"`
	}

	DeleteFoodItemResponse struct {
		ID string `json:"id"`
	}
)
