package candidateinfra

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Abraxas-365/headhunter/pkg/kernel"
	"github.com/Abraxas-365/headhunter/recruitment/candidate"
	"github.com/jmoiron/sqlx"
)

// SQLCandidateRepository stores candidates through sqlx. Queries are written
// with ? placeholders and rebound, so the same code runs on Postgres and SQLite.
type SQLCandidateRepository struct {
	db *sqlx.DB
}

func NewSQLCandidateRepository(db *sqlx.DB) candidate.Repository {
	return &SQLCandidateRepository{db: db}
}

const candidateColumns = `id, full_name, birth_date, email, expected_salary, created_at`

// Create creates a new candidate
func (r *SQLCandidateRepository) Create(ctx context.Context, c *candidate.Candidate) error {
	query := r.db.Rebind(`
		INSERT INTO candidates (
			id, full_name, birth_date, email, expected_salary, created_at
		) VALUES (
			?, ?, ?, ?, ?, ?
		)
	`)

	_, err := r.db.ExecContext(
		ctx,
		query,
		c.ID,
		c.FullName,
		c.BirthDate,
		c.Email,
		c.ExpectedSalary,
		c.CreatedAt.UTC(),
	)

	return err
}

// GetByID retrieves a candidate by ID
func (r *SQLCandidateRepository) GetByID(ctx context.Context, id kernel.CandidateID) (*candidate.Candidate, error) {
	query := r.db.Rebind(`
		SELECT ` + candidateColumns + `
		FROM candidates
		WHERE id = ?
	`)

	var c candidate.Candidate
	err := r.db.GetContext(ctx, &c, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, candidate.ErrCandidateNotFound()
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// GetByEmail retrieves the oldest candidate with the given email
func (r *SQLCandidateRepository) GetByEmail(ctx context.Context, email kernel.Email) (*candidate.Candidate, error) {
	query := r.db.Rebind(`
		SELECT ` + candidateColumns + `
		FROM candidates
		WHERE email = ?
		ORDER BY created_at ASC, id ASC
		LIMIT 1
	`)

	var c candidate.Candidate
	err := r.db.GetContext(ctx, &c, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, candidate.ErrCandidateNotFound()
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}
