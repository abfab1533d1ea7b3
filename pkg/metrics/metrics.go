// Package metrics exposes the Prometheus counters of the API.
// A nil *Recorder is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "headhunter"

// Recorder owns every counter the service emits
type Recorder struct {
	rateLimited       *prometheus.CounterVec
	authFailures      *prometheus.CounterVec
	candidatesCreated prometheus.Counter
	tokensIssued      prometheus.Counter
}

// New creates the counters and registers them on reg
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_requests_total",
			Help:      "Requests rejected by the rate limiter, by endpoint.",
		}, []string{"endpoint"}),
		authFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_failures_total",
			Help:      "Rejected credentials, by reason.",
		}, []string{"reason"}),
		candidatesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_created_total",
			Help:      "Candidate records created.",
		}),
		tokensIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_issued_total",
			Help:      "Access tokens issued on login.",
		}),
	}

	reg.MustRegister(r.rateLimited, r.authFailures, r.candidatesCreated, r.tokensIssued)
	return r
}

// Failure reasons used as label values
const (
	ReasonMissingSignature = "missing_signature"
	ReasonInvalidSignature = "invalid_signature"
	ReasonMalformedRequest = "malformed_request"
	ReasonTokenMissing     = "token_missing"
	ReasonTokenInvalid     = "token_invalid"
	ReasonLoginRejected    = "login_rejected"
)

func (r *Recorder) RateLimited(endpoint string) {
	if r == nil {
		return
	}
	r.rateLimited.WithLabelValues(endpoint).Inc()
}

func (r *Recorder) AuthFailure(reason string) {
	if r == nil {
		return
	}
	r.authFailures.WithLabelValues(reason).Inc()
}

func (r *Recorder) CandidateCreated() {
	if r == nil {
		return
	}
	r.candidatesCreated.Inc()
}

func (r *Recorder) TokenIssued() {
	if r == nil {
		return
	}
	r.tokensIssued.Inc()
}
