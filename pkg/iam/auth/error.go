package auth

import (
	"net/http"

	"github.com/Abraxas-365/headhunter/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("AUTH")

// Error codes
var (
	CodeMissingSignature = ErrRegistry.Register("MISSING_SIGNATURE", errx.TypeAuthentication, http.StatusUnauthorized, "Request signature is missing")
	CodeInvalidSignature = ErrRegistry.Register("INVALID_SIGNATURE", errx.TypeValidation, http.StatusBadRequest, "Request signature is invalid")
	CodeMalformedRequest = ErrRegistry.Register("MALFORMED_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Request body is malformed")
	CodeTokenMissing     = ErrRegistry.Register("TOKEN_MISSING", errx.TypeAuthentication, http.StatusUnauthorized, "Token is missing")
	CodeTokenInvalid     = ErrRegistry.Register("TOKEN_INVALID", errx.TypeAuthentication, http.StatusUnauthorized, "Token is invalid or expired")
	CodeUnauthorized     = ErrRegistry.Register("UNAUTHORIZED", errx.TypeAuthentication, http.StatusUnauthorized, "Could not verify credentials")
	CodeTokenSignFailed  = ErrRegistry.Register("TOKEN_SIGN_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to issue token")
)

func ErrMissingSignature() *errx.Error {
	return ErrRegistry.New(CodeMissingSignature)
}

func ErrInvalidSignature() *errx.Error {
	return ErrRegistry.New(CodeInvalidSignature)
}

func ErrMalformedRequest() *errx.Error {
	return ErrRegistry.New(CodeMalformedRequest)
}

func ErrTokenMissing() *errx.Error {
	return ErrRegistry.New(CodeTokenMissing)
}

func ErrTokenInvalid() *errx.Error {
	return ErrRegistry.New(CodeTokenInvalid)
}

func ErrUnauthorized() *errx.Error {
	return ErrRegistry.New(CodeUnauthorized)
}

func ErrTokenSignFailed() *errx.Error {
	return ErrRegistry.New(CodeTokenSignFailed)
}
