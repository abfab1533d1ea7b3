package candidate

import (
	"net/http"

	"github.com/Abraxas-365/headhunter/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("CANDIDATE")

// Error codes
var (
	CodeCandidateNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Candidate with this ID not found")
	CodeInvalidRequest    = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeInvalidBirthDate  = ErrRegistry.Register("INVALID_BIRTH_DATE", errx.TypeValidation, http.StatusBadRequest, "birth_date must be formatted as YYYY-MM-DD")
	CodeInvalidEmail      = ErrRegistry.Register("INVALID_EMAIL", errx.TypeValidation, http.StatusBadRequest, "Invalid email format")
	CodeInvalidSalary     = ErrRegistry.Register("INVALID_SALARY", errx.TypeValidation, http.StatusBadRequest, "expected_salary must not be negative")
)

// Helper functions
func ErrCandidateNotFound() *errx.Error {
	return ErrRegistry.New(CodeCandidateNotFound)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrInvalidBirthDate() *errx.Error {
	return ErrRegistry.New(CodeInvalidBirthDate)
}

func ErrInvalidEmail() *errx.Error {
	return ErrRegistry.New(CodeInvalidEmail)
}

func ErrInvalidSalary() *errx.Error {
	return ErrRegistry.New(CodeInvalidSalary)
}
