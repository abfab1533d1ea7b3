package candidate

import (
	"context"

	"github.com/Abraxas-365/headhunter/pkg/kernel"
)

type Repository interface {
	// Create stores a new candidate
	Create(ctx context.Context, candidate *Candidate) error

	// GetByID retrieves a candidate by ID
	GetByID(ctx context.Context, id kernel.CandidateID) (*Candidate, error)

	// GetByEmail retrieves the oldest candidate registered with email
	GetByEmail(ctx context.Context, email kernel.Email) (*Candidate, error)
}
