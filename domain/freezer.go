package domain

import "errors"

var (
	MessageSuccessGetFreezers   = "freezers loaded"
	MessageSuccessRenameFreezer = "freezer updated"

	MessageFailedGetFreezers   = "failed to load freezers"
	MessageFailedRenameFreezer = "failed to update freezer"

	ErrFreezerNotFound     = errors.New("freezer not found")
	ErrFreezerNameRequired = errors.New("freezer name is required")
)

type (
	FreezerResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	RenameFreezerRequest struct {
		Name string `json:"name" validate:"required"`
	}
)
