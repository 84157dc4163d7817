// Package repository implements data access for the Waypost API.
//
// Repositories translate between domain models and SurrealDB records. All
// queries use parameterized variables; no values are interpolated into query
// strings.
//
// The place repository owns the dual-write invariant between places and
// their creators: a place's creator field and the creator's places set are
// written together in a single transaction batch, both on create and on
// delete. No code path writes one side without the other.
//
// SurrealDB record ids come back from the SDK in several shapes (string,
// models.RecordID, nested maps). convertSurrealID canonicalizes all of them
// to the "table:id" string form used throughout the application.
package repository
