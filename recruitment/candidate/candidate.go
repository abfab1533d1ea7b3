package candidate

import (
	"time"

	"github.com/Abraxas-365/headhunter/pkg/kernel"
)

// Candidate is a job seeker record. It is created once and never updated or deleted.
type Candidate struct {
	ID             kernel.CandidateID `db:"id" json:"id"`
	FullName       kernel.FullName    `db:"full_name" json:"full_name"`
	BirthDate      kernel.BirthDate   `db:"birth_date" json:"birth_date"`
	Email          kernel.Email       `db:"email" json:"email"`
	ExpectedSalary kernel.Salary      `db:"expected_salary" json:"expected_salary"`
	CreatedAt      time.Time          `db:"created_at" json:"created_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// GetFullName returns the candidate's full name
func (c *Candidate) GetFullName() string {
	return c.FullName.String()
}

// ToResponse returns the public view of the candidate, without the internal ID
func (c *Candidate) ToResponse() CandidateResponse {
	return CandidateResponse{
		FullName:       c.FullName,
		BirthDate:      c.BirthDate,
		Email:          c.Email,
		ExpectedSalary: c.ExpectedSalary,
	}
}
