package errx

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
)

// Type classifies an error independently of the domain that raised it
type Type string

const (
	TypeValidation     Type = "VALIDATION"
	TypeNotFound       Type = "NOT_FOUND"
	TypeConflict       Type = "CONFLICT"
	TypeBusiness       Type = "BUSINESS"
	TypeAuthentication Type = "AUTHENTICATION"
	TypeAuthorization  Type = "AUTHORIZATION"
	TypeRateLimit      Type = "RATE_LIMIT"
	TypeInternal       Type = "INTERNAL"
)

// defaultStatus maps a type to the status used when none was registered
var defaultStatus = map[Type]int{
	TypeValidation:     http.StatusBadRequest,
	TypeNotFound:       http.StatusNotFound,
	TypeConflict:       http.StatusConflict,
	TypeBusiness:       http.StatusUnprocessableEntity,
	TypeAuthentication: http.StatusUnauthorized,
	TypeAuthorization:  http.StatusForbidden,
	TypeRateLimit:      http.StatusTooManyRequests,
	TypeInternal:       http.StatusInternalServerError,
}

// Error is the error type returned across service and API boundaries
type Error struct {
	Type       Type           `json:"type"`
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause
func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetail attaches a key/value pair that is returned to the client
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause records the underlying error without exposing it in responses
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// ToHTTPResponse renders the client-facing body. The cause is never included.
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"error":   http.StatusText(e.HTTPStatus),
		"type":    e.Type,
		"code":    e.Code,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

// New builds an unregistered error
func New(message string, t Type) *Error {
	return &Error{
		Type:       t,
		Code:       string(t),
		Message:    message,
		HTTPStatus: statusFor(t),
	}
}

// Wrap turns any error into an *Error. An *Error is returned unchanged.
func Wrap(err error, message string, t Type) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return New(message, t).WithCause(err)
}

// As reports whether err is (or wraps) an *Error
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsCode reports whether err carries the given registered code
func IsCode(err error, code Code) bool {
	e, ok := As(err)
	return ok && e.Code == code.String()
}

// IsType reports whether err is an *Error of type t
func IsType(err error, t Type) bool {
	e, ok := As(err)
	return ok && e.Type == t
}

func statusFor(t Type) int {
	if s, ok := defaultStatus[t]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// TypeForStatus classifies a bare HTTP status, such as one raised by the router
func TypeForStatus(status int) Type {
	for t, s := range defaultStatus {
		if s == status {
			return t
		}
	}
	if status >= 400 && status < 500 {
		return TypeValidation
	}
	return TypeInternal
}

// FromStatus builds an error for a status that carries no registered code.
// The code is HTTP.<STATUS_TEXT>, e.g. HTTP.METHOD_NOT_ALLOWED.
func FromStatus(status int, message string) *Error {
	text := http.StatusText(status)
	if text == "" {
		text = fmt.Sprintf("STATUS_%d", status)
	}
	return &Error{
		Type:       TypeForStatus(status),
		Code:       "HTTP." + strings.ToUpper(strings.ReplaceAll(text, " ", "_")),
		Message:    message,
		HTTPStatus: status,
	}
}

// ============================================================================
// Registry
// ============================================================================

// Code identifies a registered error, e.g. CANDIDATE.NOT_FOUND
type Code string

func (c Code) String() string { return string(c) }

type definition struct {
	errType Type
	status  int
	message string
}

// Registry holds the error codes of one domain under a common prefix
type Registry struct {
	prefix string

	mu    sync.RWMutex
	codes map[Code]definition
}

// NewRegistry creates a registry whose codes are prefixed with prefix
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		codes:  make(map[Code]definition),
	}
}

// Register adds a code. Registering the same code twice panics.
func (r *Registry) Register(code string, t Type, status int, message string) Code {
	full := Code(r.prefix + "." + code)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.codes[full]; exists {
		panic(fmt.Sprintf("errx: code %s registered twice", full))
	}
	if status == 0 {
		status = statusFor(t)
	}
	r.codes[full] = definition{errType: t, status: status, message: message}
	return full
}

// New creates a fresh error instance for a registered code
func (r *Registry) New(code Code) *Error {
	r.mu.RLock()
	def, ok := r.codes[code]
	r.mu.RUnlock()
	if !ok {
		return New(fmt.Sprintf("unregistered error code %s", code), TypeInternal)
	}
	return &Error{
		Type:       def.errType,
		Code:       code.String(),
		Message:    def.message,
		HTTPStatus: def.status,
	}
}
