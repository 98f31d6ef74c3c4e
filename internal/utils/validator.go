package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
}

var resourceIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// IsValidResourceID reports whether id is usable as a document/row key:
// non-empty, letters, digits, underscore and hyphen only.
func IsValidResourceID(id string) bool {
	return resourceIDPattern.MatchString(id)
}
