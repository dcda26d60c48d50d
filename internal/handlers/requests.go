package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// ScrapeRequest is the form posted by the dashboard's scrape panel. Blank
// values are accepted here; the dashboard reports them to the user itself.
type ScrapeRequest struct {
	TargetURL string `form:"target_url" validate:"max=2048"`
}
