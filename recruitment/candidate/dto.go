package candidate

import (
	"strconv"
	"strings"

	"github.com/Abraxas-365/headhunter/pkg/kernel"
)

// CreateCandidateRequest - DTO for creating a new candidate.
// BirthDate stays a string because the signature covers the literal value sent.
type CreateCandidateRequest struct {
	FullName       string `json:"full_name"`
	BirthDate      string `json:"birth_date"`
	Email          string `json:"email"`
	ExpectedSalary *int64 `json:"expected_salary"`
}

// SignedFields returns the fields covered by the request signature, in signing order
func (r CreateCandidateRequest) SignedFields() ([]string, error) {
	var missing []string
	if strings.TrimSpace(r.FullName) == "" {
		missing = append(missing, "full_name")
	}
	if strings.TrimSpace(r.BirthDate) == "" {
		missing = append(missing, "birth_date")
	}
	if strings.TrimSpace(r.Email) == "" {
		missing = append(missing, "email")
	}
	if r.ExpectedSalary == nil {
		missing = append(missing, "expected_salary")
	}
	if len(missing) > 0 {
		return nil, ErrInvalidRequest().WithDetail("missing_fields", missing)
	}

	return []string{
		r.FullName,
		r.BirthDate,
		r.Email,
		strconv.FormatInt(*r.ExpectedSalary, 10),
	}, nil
}

// ToCandidate validates the request and builds the entity, without ID or timestamps.
// Name and email are stored exactly as signed.
func (r CreateCandidateRequest) ToCandidate() (*Candidate, error) {
	if _, err := r.SignedFields(); err != nil {
		return nil, err
	}

	birthDate, err := kernel.ParseBirthDate(r.BirthDate)
	if err != nil {
		return nil, ErrInvalidBirthDate().WithDetail("birth_date", r.BirthDate)
	}

	if !kernel.Email(r.Email).Normalize().IsValid() {
		return nil, ErrInvalidEmail().WithDetail("email", r.Email)
	}

	if *r.ExpectedSalary < 0 {
		return nil, ErrInvalidSalary()
	}

	return &Candidate{
		FullName:       kernel.FullName(r.FullName),
		BirthDate:      birthDate,
		Email:          kernel.Email(r.Email),
		ExpectedSalary: kernel.Salary(*r.ExpectedSalary),
	}, nil
}

// CreateCandidateResponse - DTO returned after a candidate is created
type CreateCandidateResponse struct {
	CandidateID kernel.CandidateID `json:"candidate_id"`
}

// CandidateResponse - DTO for returning candidate data
type CandidateResponse struct {
	FullName       kernel.FullName  `json:"full_name"`
	BirthDate      kernel.BirthDate `json:"birth_date"`
	Email          kernel.Email     `json:"email"`
	ExpectedSalary kernel.Salary    `json:"expected_salary"`
}

// GetCandidateResponse - envelope of the retrieve endpoint
type GetCandidateResponse struct {
	Candidate CandidateResponse `json:"candidate"`
}
