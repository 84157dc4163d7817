// Package handler implements the HTTP layer of the Waypost API.
//
// Handlers decode requests, call services and encode responses. Successful
// responses use a data envelope:
//
//	{"data": {...}}
//
// Errors use RFC 9457 Problem Details with Content-Type
// application/problem+json. MapServiceError is the single place where
// service errors become HTTP status codes; handlers never pick status codes
// for service failures themselves.
package handler
