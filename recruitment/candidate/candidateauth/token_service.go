package candidateauth

import (
	"time"

	"github.com/Abraxas-365/headhunter/pkg/errx"
	"github.com/Abraxas-365/headhunter/pkg/iam/auth"
	"github.com/Abraxas-365/headhunter/pkg/kernel"
	"github.com/Abraxas-365/headhunter/recruitment/candidate"
)

// CandidateTokenService wraps IAM's TokenService for candidate-specific tokens
type CandidateTokenService struct {
	iamTokenService auth.TokenService
}

// NewCandidateTokenService creates a wrapper around IAM's TokenService
func NewCandidateTokenService(iamTokenService auth.TokenService) *CandidateTokenService {
	return &CandidateTokenService{
		iamTokenService: iamTokenService,
	}
}

// IssueCandidateToken issues a token whose issuer is the candidate's full name
func (s *CandidateTokenService) IssueCandidateToken(c *candidate.Candidate) (string, *CandidateClaims, error) {
	token, claims, err := s.iamTokenService.GenerateAccessToken(c.GetFullName(), auth.SubjectCandidate)
	if err != nil {
		return "", nil, errx.Wrap(err, "failed to generate candidate token", errx.TypeInternal)
	}

	return token, toCandidateClaims(claims), nil
}

// ValidateCandidateToken validates a candidate token.
// Tokens signed with the same key for another subject are rejected.
func (s *CandidateTokenService) ValidateCandidateToken(tokenString string) (*CandidateClaims, error) {
	tokenClaims, err := s.iamTokenService.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, err
	}

	if tokenClaims.Subject != auth.SubjectCandidate {
		return nil, auth.ErrTokenInvalid().WithDetail("reason", "subject")
	}

	return toCandidateClaims(tokenClaims), nil
}

func toCandidateClaims(c *auth.TokenClaims) *CandidateClaims {
	return &CandidateClaims{
		FullName:  kernel.FullName(c.Issuer),
		Subject:   c.Subject,
		IssuedAt:  c.IssuedAt,
		ExpiresAt: c.ExpiresAt,
	}
}

// CandidateClaims represents candidate-specific claims
type CandidateClaims struct {
	FullName  kernel.FullName
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
