// Package database provides database connectivity for the Waypost API.
//
// The database package abstracts SurrealDB operations and provides
// a consistent interface for data access across the application.
//
// # Database Interface
//
// The Database interface defines core operations:
//
//	type Database interface {
//	    Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)
//	    QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)
//	    Execute(ctx context.Context, query string, vars map[string]interface{}) error
//	    Close() error
//	}
//
// # Transactions
//
// Transactions are BATCH-BASED: statements accumulate in a TxBuilder (or the
// fluent AtomicBatch front end) and execute together wrapped in
// BEGIN TRANSACTION / COMMIT TRANSACTION. All statements succeed or fail
// together at execute time; there is no isolation between Add() calls.
//
//	batch := database.NewAtomicBatch()
//	batch.Add(createPlace, placeVars)
//	batch.Add(linkToCreator, userVars)
//	err := batch.Execute(ctx, db) // All or nothing
//
// # Error Types
//
// Standard error types for data operations, checked with errors.Is():
//
//   - ErrNotFound: Record does not exist
//   - ErrDuplicate: Unique constraint violation
//   - ErrConnection: Database connection failed
//   - ErrQuery: Query execution failed
package database
