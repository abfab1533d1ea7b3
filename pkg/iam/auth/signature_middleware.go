package auth

import (
	"github.com/Abraxas-365/headhunter/pkg/errx"
	"github.com/Abraxas-365/headhunter/pkg/metrics"
	"github.com/gofiber/fiber/v2"
)

// FieldExtractor returns the body fields covered by the signature, in signing order.
// It returns an error when a required field is missing or cannot be parsed.
type FieldExtractor func(c *fiber.Ctx) ([]string, error)

// SignatureMiddleware rejects requests whose api-signature header does not match
// the HMAC of the canonical message.
func SignatureMiddleware(verifier *SignatureVerifier, extract FieldExtractor, rec *metrics.Recorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		signature := c.Get(HeaderSignature)
		if signature == "" {
			rec.AuthFailure(metrics.ReasonMissingSignature)
			return ErrMissingSignature()
		}

		fields, err := extract(c)
		if err != nil {
			rec.AuthFailure(metrics.ReasonMalformedRequest)
			if e, ok := errx.As(err); ok {
				return e
			}
			return ErrMalformedRequest().WithDetail("parse_error", err.Error())
		}

		ok, err := verifier.Verify(c.Method(), c.Path(), fields, signature)
		if err != nil {
			rec.AuthFailure(metrics.ReasonMissingSignature)
			return err
		}
		if !ok {
			rec.AuthFailure(metrics.ReasonInvalidSignature)
			return ErrInvalidSignature()
		}

		return c.Next()
	}
}
