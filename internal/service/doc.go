// Package service implements the business logic for the Waypost API.
//
// Services sit between handlers and repositories. They validate input,
// enforce ownership rules and orchestrate multi-step operations such as
// geocoding an address before persisting a place.
//
// All errors returned by service methods are sentinel errors defined in
// errors.go. Handlers map them to HTTP status codes with errors.Is();
// nothing in this package knows about HTTP.
package service
