// Package types provides request DTOs shared between the REST API and its
// clients.
package types

import "github.com/go-playground/validator/v10"

// LinkResumeRequest asks the service to extract the resume at URL and store
// the result for the given chat user.
type LinkResumeRequest struct {
	TelegramID int64  `json:"telegram_id" validate:"required"`
	URL        string `json:"url" validate:"required,url"`
}

// Validate validates the LinkResumeRequest using the validator.
func (r *LinkResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ExtractRequest asks for a one-off extraction without persistence.
type ExtractRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// Validate validates the ExtractRequest using the validator.
func (r *ExtractRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
