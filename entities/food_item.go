package entities

import (
	"time"

	"github.com/google/uuid"
)

type FoodItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      string    `gorm:"index" json:"userId"`
	FreezerID   string    `gorm:"index" json:"freezerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	FreezerBox  string    `json:"freezerBox,omitempty"`
	ItemType    string    `json:"itemType"` // one of domain.FoodTypeValues, "otro" when unset
	FrozenDate  time.Time `gorm:"type:timestamp" json:"frozenDate"`
	PhotoURL    string    `json:"photoUrl,omitempty"`
	IsSeed      bool      `json:"isSeed"`

	Timestamp
}
