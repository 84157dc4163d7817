package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrNameRequired       = errors.New("name is required")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 72 characters")
)

// ===== Place Errors =====
var (
	ErrPlaceNotFound       = errors.New("place not found")
	ErrNotPlaceOwner       = errors.New("not the owner of this place")
	ErrTitleRequired       = errors.New("title is required")
	ErrTitleTooLong        = errors.New("title exceeds maximum length")
	ErrDescriptionTooShort = errors.New("description must be at least 5 characters")
	ErrDescriptionTooLong  = errors.New("description exceeds maximum length")
	ErrAddressRequired     = errors.New("address is required")
)

// ===== Geocoding Errors =====
var (
	ErrAddressNotFound      = errors.New("could not resolve address to a location")
	ErrGeocodingUnavailable = errors.New("geocoding service unavailable")
)
