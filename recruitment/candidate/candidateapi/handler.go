package candidateapi

import (
	"strings"

	"github.com/Abraxas-365/headhunter/pkg/iam/auth"
	"github.com/Abraxas-365/headhunter/pkg/kernel"
	"github.com/Abraxas-365/headhunter/recruitment/candidate"
	"github.com/Abraxas-365/headhunter/recruitment/candidate/candidatesrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for candidate operations
type Handlers struct {
	service *candidatesrv.CandidateService
}

// NewHandlers creates a new candidate handlers instance
func NewHandlers(service *candidatesrv.CandidateService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateCandidate creates a new candidate
// POST /api/candidate
func (h *Handlers) CreateCandidate(c *fiber.Ctx) error {
	var req candidate.CreateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return auth.ErrMalformedRequest().WithDetail("parse_error", err.Error())
	}

	newCandidate, err := h.service.CreateCandidate(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(candidate.CreateCandidateResponse{
		CandidateID: newCandidate.ID,
	})
}

// GetCandidateByID retrieves a candidate by ID
// GET /api/candidate/:id
func (h *Handlers) GetCandidateByID(c *fiber.Ctx) error {
	candidateID := kernel.CandidateID(strings.TrimSpace(c.Params("id")))
	if candidateID.IsEmpty() {
		return candidate.ErrCandidateNotFound().WithDetail("candidate_id", "missing or empty")
	}

	candidateResp, err := h.service.GetCandidateByID(c.UserContext(), candidateID)
	if err != nil {
		return err
	}

	return c.JSON(candidateResp)
}

// SignedFields extracts the signed fields of a create request for the signature middleware
func SignedFields(c *fiber.Ctx) ([]string, error) {
	var req candidate.CreateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, auth.ErrMalformedRequest().WithDetail("parse_error", err.Error())
	}
	return req.SignedFields()
}

// Middlewares holds the per-route guards, built by the container
type Middlewares struct {
	CreateRateLimit   fiber.Handler
	RetrieveRateLimit fiber.Handler
	Signature         fiber.Handler
	CandidateAuth     fiber.Handler
}

// RegisterRoutes registers all candidate routes.
// The rate limiter always runs first so throttled clients never reach credential checks.
func RegisterRoutes(app *fiber.App, handlers *Handlers, mw Middlewares) {
	api := app.Group("/api/candidate")

	api.Post("/",
		mw.CreateRateLimit,
		mw.Signature,
		handlers.CreateCandidate,
	)

	api.Get("/:id",
		mw.RetrieveRateLimit,
		mw.CandidateAuth,
		handlers.GetCandidateByID,
	)
}
