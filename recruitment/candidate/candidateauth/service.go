package candidateauth

import (
	"context"
	"time"

	"github.com/Abraxas-365/headhunter/pkg/errx"
	"github.com/Abraxas-365/headhunter/pkg/iam/auth"
	"github.com/Abraxas-365/headhunter/pkg/kernel"
	"github.com/Abraxas-365/headhunter/pkg/logx"
	"github.com/Abraxas-365/headhunter/pkg/metrics"
	"github.com/Abraxas-365/headhunter/recruitment/candidate"
)

type CandidateAuthService struct {
	candidateRepo candidate.Repository
	passphrase    *auth.PassphraseChecker
	tokenService  *CandidateTokenService
	metrics       *metrics.Recorder
}

func NewCandidateAuthService(
	candidateRepo candidate.Repository,
	passphrase *auth.PassphraseChecker,
	tokenService *CandidateTokenService,
	rec *metrics.Recorder,
) *CandidateAuthService {
	return &CandidateAuthService{
		candidateRepo: candidateRepo,
		passphrase:    passphrase,
		tokenService:  tokenService,
		metrics:       rec,
	}
}

// Login checks the shared passphrase first and only then looks up the email,
// issuing a session token for the earliest candidate stored under it. The
// lookup never runs for a wrong passphrase, so response time does not reveal
// which emails exist. Every credential failure is AUTH.UNAUTHORIZED.
func (s *CandidateAuthService) Login(ctx context.Context, email kernel.Email, password string) (*CandidateSession, error) {
	if email == "" || password == "" {
		s.metrics.AuthFailure(metrics.ReasonLoginRejected)
		return nil, auth.ErrUnauthorized()
	}

	if !s.passphrase.Matches(password) {
		s.metrics.AuthFailure(metrics.ReasonLoginRejected)
		logx.Debugf("login rejected for %s", email)
		return nil, auth.ErrUnauthorized()
	}

	candidateEntity, err := s.candidateRepo.GetByEmail(ctx, email)
	if err != nil {
		if errx.IsCode(err, candidate.CodeCandidateNotFound) {
			s.metrics.AuthFailure(metrics.ReasonLoginRejected)
			return nil, auth.ErrUnauthorized()
		}
		return nil, errx.Wrap(err, "failed to look up candidate", errx.TypeInternal)
	}

	token, claims, err := s.tokenService.IssueCandidateToken(candidateEntity)
	if err != nil {
		return nil, err
	}

	s.metrics.TokenIssued()
	return &CandidateSession{
		Token:     token,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

type CandidateSession struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
