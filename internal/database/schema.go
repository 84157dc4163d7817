package database

import (
	"context"
	"fmt"
)

// schemaStatements are applied at startup. SurrealDB tables are schemaless
// by default; the unique index on user.email is what makes a duplicate
// signup fail at the store even when two requests race past the
// check-then-create in the service.
var schemaStatements = []string{
	`DEFINE INDEX IF NOT EXISTS user_email_unique ON TABLE user FIELDS email UNIQUE`,
}

// EnsureSchema applies the schema statements. All statements are idempotent,
// so running this on every startup is safe.
func EnsureSchema(ctx context.Context, db Database) error {
	for _, stmt := range schemaStatements {
		if err := db.Execute(ctx, stmt, nil); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}
	return nil
}
