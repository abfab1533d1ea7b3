package ratelimit

import (
	"context"
	"time"
)

// Rule caps requests per key within a fixed window
type Rule struct {
	Limit  int           `yaml:"limit"`
	Window time.Duration `yaml:"window"`
}

// PerMinute is a convenience for the common one-minute window
func PerMinute(limit int) Rule {
	return Rule{Limit: limit, Window: time.Minute}
}

// Result describes the state of a key after a request was counted
type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter counts requests per key in a store shared between instances.
// Implementations must be safe for concurrent use.
type Limiter interface {
	Allow(ctx context.Context, key string, rule Rule) (Result, error)
}
