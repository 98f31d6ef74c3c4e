package entities

import (
	"time"

	"github.com/google/uuid"
)

// Freezer is one named container owned by a user. FreezerID is the stable
// slug the API exposes ("freezer1", "freezer2", ...); it is unique per user,
// not globally.
type Freezer struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"-"`
	UserID    string    `gorm:"uniqueIndex:idx_user_freezer" json:"userId"`
	FreezerID string    `gorm:"uniqueIndex:idx_user_freezer" json:"id"`
	Name      string    `json:"name"`
	Position  int       `json:"-"`

	Timestamp
}

// UserBootstrap marks a user whose default freezers and seed items exist.
// Inserting this row with ON CONFLICT DO NOTHING is the create-if-absent
// gate for seeding: only the request whose insert takes effect seeds.
type UserBootstrap struct {
	UserID   string    `gorm:"primary_key" json:"userId"`
	SeededAt time.Time `gorm:"type:timestamp" json:"seededAt"`
}
