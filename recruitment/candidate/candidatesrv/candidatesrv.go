package candidatesrv

import (
	"context"
	"time"

	"github.com/Abraxas-365/headhunter/pkg/errx"
	"github.com/Abraxas-365/headhunter/pkg/kernel"
	"github.com/Abraxas-365/headhunter/pkg/logx"
	"github.com/Abraxas-365/headhunter/pkg/metrics"
	"github.com/Abraxas-365/headhunter/recruitment/candidate"
	"github.com/google/uuid"
)

// CandidateService provides business operations for candidates
type CandidateService struct {
	candidateRepo candidate.Repository
	metrics       *metrics.Recorder
	newID         func() string
	now           func() time.Time
}

// NewCandidateService creates a new instance of the candidate service
func NewCandidateService(candidateRepo candidate.Repository, rec *metrics.Recorder) *CandidateService {
	return &CandidateService{
		candidateRepo: candidateRepo,
		metrics:       rec,
		newID:         uuid.NewString,
		now:           time.Now,
	}
}

// CreateCandidate validates the request, assigns a fresh ID and stores the candidate
func (s *CandidateService) CreateCandidate(ctx context.Context, req candidate.CreateCandidateRequest) (*candidate.Candidate, error) {
	newCandidate, err := req.ToCandidate()
	if err != nil {
		return nil, err
	}

	newCandidate.ID = kernel.NewCandidateID(s.newID())
	newCandidate.CreatedAt = s.now()

	if err := s.candidateRepo.Create(ctx, newCandidate); err != nil {
		logx.Errorf("failed to create candidate %s: %v", newCandidate.ID, err)
		return nil, errx.Wrap(err, "failed to create candidate", errx.TypeInternal)
	}

	s.metrics.CandidateCreated()
	return newCandidate, nil
}

// GetCandidateByID retrieves a candidate by ID
func (s *CandidateService) GetCandidateByID(ctx context.Context, candidateID kernel.CandidateID) (*candidate.GetCandidateResponse, error) {
	candidateEntity, err := s.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		if errx.IsCode(err, candidate.CodeCandidateNotFound) {
			return nil, candidate.ErrCandidateNotFound().WithDetail("candidate_id", candidateID.String())
		}
		return nil, errx.Wrap(err, "failed to get candidate", errx.TypeInternal)
	}

	return &candidate.GetCandidateResponse{Candidate: candidateEntity.ToResponse()}, nil
}
