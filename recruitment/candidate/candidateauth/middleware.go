package candidateauth

import (
	"strings"

	"github.com/Abraxas-365/headhunter/pkg/errx"
	"github.com/Abraxas-365/headhunter/pkg/iam/auth"
	"github.com/Abraxas-365/headhunter/pkg/metrics"
	"github.com/gofiber/fiber/v2"
)

const claimsKey = "candidate_claims"

// Middleware validates candidate tokens sent in the api-jwt header
func Middleware(tokenService *CandidateTokenService, rec *metrics.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := strings.TrimSpace(c.Get(auth.HeaderToken))
		// some clients reuse their Authorization formatting
		token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
		if token == "" {
			rec.AuthFailure(metrics.ReasonTokenMissing)
			return auth.ErrTokenMissing()
		}

		claims, err := tokenService.ValidateCandidateToken(token)
		if err != nil {
			rec.AuthFailure(metrics.ReasonTokenInvalid)
			if e, ok := errx.As(err); ok {
				return e
			}
			return auth.ErrTokenInvalid().WithCause(err)
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// GetCandidateClaims extracts the validated claims from context
func GetCandidateClaims(c *fiber.Ctx) (*CandidateClaims, bool) {
	claims, ok := c.Locals(claimsKey).(*CandidateClaims)
	return claims, ok
}
