// Package model defines domain entities and data structures for the Waypost API.
//
// The model package contains all struct definitions for domain objects and
// error definitions. Models are used across all layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - User: Application user with authentication credentials and the set of
//     place ids the user created
//   - Place: A point of interest with a geocoded location and a creator
//     reference back to the owning User
//   - Location: Latitude/longitude pair derived from a street address
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Place struct {
//	    ID    string `json:"id"`
//	    Title string `json:"title"`
//	}
//
// Sensitive fields (password hashes) carry `json:"-"` and never serialize.
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string    `json:"type"`
//	    Title   string    `json:"title"`
//	    Status  int       `json:"status"`
//	    Detail  string    `json:"detail"`
//	}
package model
