package candidateinfra

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema is valid for both Postgres and SQLite
var schema = []string{
	`CREATE TABLE IF NOT EXISTS candidates (
		id              VARCHAR(36) PRIMARY KEY,
		full_name       VARCHAR(255) NOT NULL,
		birth_date      DATE NOT NULL,
		email           VARCHAR(255) NOT NULL,
		expected_salary BIGINT NOT NULL,
		created_at      TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_candidates_email ON candidates (email)`,
}

// Migrate creates the candidates table if it does not exist
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}
