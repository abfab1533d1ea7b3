package ratelimit

import (
	"net/http"

	"github.com/Abraxas-365/headhunter/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("RATELIMIT")

var (
	CodeTooManyRequests = ErrRegistry.Register("TOO_MANY_REQUESTS", errx.TypeRateLimit, http.StatusTooManyRequests, "Too many requests, try again later")
)

func ErrTooManyRequests() *errx.Error {
	return ErrRegistry.New(CodeTooManyRequests)
}
