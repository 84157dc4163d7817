package handler

import (
	"errors"

	"github.com/waypost/api/internal/model"
	"github.com/waypost/api/internal/service"
	"github.com/waypost/api/pkg/jwt"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
//
// Ownership failures map to 401, not 403: the API treats "you are not who
// this place belongs to" the same as "you are not authenticated for this
// action".
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrNotPlaceOwner),
		errors.Is(err, jwt.ErrInvalidToken),
		errors.Is(err, jwt.ErrTokenExpired):
		return model.NewUnauthorizedError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")
	case errors.Is(err, service.ErrPlaceNotFound):
		return model.NewNotFoundError("place")

	// ===== Conflict Errors → 422 =====
	case errors.Is(err, service.ErrEmailAlreadyExists):
		return model.NewConflictError(err.Error())

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrNameRequired):
		return model.NewValidationError([]model.FieldError{{Field: "name", Message: err.Error()}})
	case errors.Is(err, service.ErrInvalidEmail):
		return model.NewValidationError([]model.FieldError{{Field: "email", Message: err.Error()}})
	case errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrPasswordTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "password", Message: err.Error()}})
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrTitleTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "title", Message: err.Error()}})
	case errors.Is(err, service.ErrDescriptionTooShort),
		errors.Is(err, service.ErrDescriptionTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "description", Message: err.Error()}})
	case errors.Is(err, service.ErrAddressRequired):
		return model.NewValidationError([]model.FieldError{{Field: "address", Message: err.Error()}})

	// ===== Unresolvable Address → 422 =====
	// The address was well-formed input that the provider could not resolve
	case errors.Is(err, service.ErrAddressNotFound):
		return model.NewUnresolvableError(err.Error())

	// ===== Geocoder Outage → 500 =====
	// Distinct from ErrAddressNotFound: this is our infrastructure failing,
	// not the client's input. The wrapped error carries the provider URL
	// (including the API key), so only the generic detail goes to the client.
	case errors.Is(err, service.ErrGeocodingUnavailable):
		return model.NewInternalError("")

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
