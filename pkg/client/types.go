package client

import (
	"encoding/json"
	"fmt"
	"time"
)

// FoodTypeOtro is the catch-all category unknown or missing stored values
// normalize to on read.
const FoodTypeOtro = "otro"

var foodTypes = map[string]bool{
	"pollo": true, "carne": true, "verdura": true, "pescado": true,
	"hielo": true, "bebida": true, "tupper": true, "pan": true, "otro": true,
}

type Freezer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type FoodItem struct {
	ID          string
	UserID      string
	FreezerID   string
	Name        string
	Description string
	FreezerBox  string
	ItemType    string
	FrozenDate  time.Time
	PhotoURL    string
	IsSeed      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	FreezerID   string `json:"freezerId"`
	FreezerBox  string `json:"freezerBox,omitempty"`
	ItemType    string `json:"itemType,omitempty"`
	FrozenDate  string `json:"frozenDate,omitempty"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	FreezerBox  *string `json:"freezerBox,omitempty"`
	ItemType    *string `json:"itemType,omitempty"`
	FrozenDate  *string `json:"frozenDate,omitempty"`
}

// wireTime accepts the two temporal encodings that occur on the wire, epoch
// milliseconds or an ISO string. Anything else is an error rather than a
// silent epoch-zero fallback.
type wireTime struct {
	time.Time
}

func (w *wireTime) UnmarshalJSON(data []byte) error {
	var millis int64
	if err := json.Unmarshal(data, &millis); err == nil {
		w.Time = time.UnixMilli(millis).UTC()
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, s); err == nil {
				w.Time = t
				return nil
			}
		}
		return fmt.Errorf("unparseable time value %q", s)
	}

	return fmt.Errorf("unparseable time value %s", data)
}

type wireFoodItem struct {
	ID          string   `json:"id"`
	UserID      string   `json:"userId"`
	FreezerID   string   `json:"freezerId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	FreezerBox  string   `json:"freezerBox"`
	ItemType    string   `json:"itemType"`
	FrozenDate  wireTime `json:"frozenDate"`
	PhotoURL    string   `json:"photoUrl"`
	IsSeed      bool     `json:"isSeed"`
	CreatedAt   wireTime `json:"createdAt"`
	UpdatedAt   wireTime `json:"updatedAt"`
}

func (w wireFoodItem) normalize() FoodItem {
	itemType := w.ItemType
	if !foodTypes[itemType] {
		itemType = FoodTypeOtro
	}

	return FoodItem{
		ID:          w.ID,
		UserID:      w.UserID,
		FreezerID:   w.FreezerID,
		Name:        w.Name,
		Description: w.Description,
		FreezerBox:  w.FreezerBox,
		ItemType:    itemType,
		FrozenDate:  w.FrozenDate.Time,
		PhotoURL:    w.PhotoURL,
		IsSeed:      w.IsSeed,
		CreatedAt:   w.CreatedAt.Time,
		UpdatedAt:   w.UpdatedAt.Time,
	}
}
