package domain

import "time"

var (
	MessageUserInitialized        = "user initialized"
	MessageUserAlreadyInitialized = "user already initialized"
	MessageFailedInitializeUser   = "failed to initialize user"
)

// DefaultFreezers is the fixed container pair every new user starts with.
var DefaultFreezers = []FreezerResponse{
	{ID: "freezer1", Name: "Congelador de cocina"},
	{ID: "freezer2", Name: "Congelador del garaje"},
}

// SeedFoodItem is the sample record written into each default freezer during
// bootstrap, flagged as seed data but otherwise an ordinary item.
var SeedFoodItem = struct {
	Name        string
	Description string
	FreezerBox  string
	ItemType    string
	FrozenDate  time.Time
}{
	Name:        "Nombre alimento 1",
	Description: "Comida que sobro del fin de semana",
	FreezerBox:  "Segundo cajon",
	ItemType:    "tupper",
	FrozenDate:  time.Date(2026, time.January, 28, 0, 0, 0, 0, time.UTC),
}

type BootstrapResponse struct {
	Created bool `json:"created"`
}
