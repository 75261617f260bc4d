package status

import (
	"errors"
	"fmt"
)

// Status is the error type carried by every failing operation in the
// interactivity core. Failures are values, never panics; the single fatal
// assertion in the core panics with a *Status whose code is
// CodeHookAlreadySet.
type Status struct {
	code     Code
	category Category
	message  string
	cause    error
	kind     string // related service kind, if applicable
}

var _ error = (*Status)(nil)

// Error returns the status message.
func (s *Status) Error() string {
	if s.cause != nil {
		return fmt.Sprintf("%s: %v", s.message, s.cause)
	}
	return s.message
}

// Code returns the status code.
func (s *Status) Code() Code {
	return s.code
}

// Category returns the status category.
func (s *Status) Category() Category {
	return s.category
}

// Retryable returns whether the failed operation may succeed on retry.
func (s *Status) Retryable() bool {
	return s.category.IsRetryable()
}

// Kind returns the related service kind, if one was attached.
func (s *Status) Kind() string {
	return s.kind
}

// Unwrap returns the underlying cause.
func (s *Status) Unwrap() error {
	return s.cause
}

// Option is a functional option for configuring a Status.
type Option func(*Status)

// WithCause sets the underlying cause.
func WithCause(cause error) Option {
	return func(s *Status) {
		s.cause = cause
	}
}

// WithKind attaches the service kind the status relates to.
func WithKind(kind string) Option {
	return func(s *Status) {
		s.kind = kind
	}
}

// WithCategory overrides the code's default category.
func WithCategory(cat Category) Option {
	return func(s *Status) {
		s.category = cat
	}
}

// New creates a Status with the given code and message.
func New(code Code, message string, opts ...Option) *Status {
	s := &Status{
		code:     code,
		category: code.DefaultCategory(),
		message:  message,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Newf creates a Status with a formatted message.
func Newf(code Code, format string, args ...interface{}) *Status {
	return New(code, fmt.Sprintf(format, args...))
}

// FromCode creates a Status with the default description for the code.
func FromCode(code Code, opts ...Option) *Status {
	return New(code, code.Description(), opts...)
}

// AlreadyRegistered reports that the slot for kind is already occupied.
func AlreadyRegistered(kind string) *Status {
	return New(CodeAlreadyRegistered, fmt.Sprintf("%s already registered", kind), WithKind(kind))
}

// InvalidInstance reports that a nil or empty instance was handed in for kind.
func InvalidInstance(kind string) *Status {
	return New(CodeInvalidInstance, fmt.Sprintf("nil %s instance", kind), WithKind(kind))
}

// CreateFailed reports that platform construction for kind failed.
// The slot is left empty; the caller may retry.
func CreateFailed(kind string, cause error) *Status {
	return New(CodeCreateFailed, fmt.Sprintf("creating %s", kind), WithKind(kind), WithCause(cause))
}

// FactoryUnavailable reports that the interactivity factory could not be loaded.
func FactoryUnavailable(cause error) *Status {
	return New(CodeFactoryUnavailable, "loading interactivity factory", WithCause(cause))
}

// Wrap wraps an error with additional context while preserving its code and
// category. If err is nil, Wrap returns nil. Non-Status errors become
// CodeInternal.
func Wrap(err error, message string, opts ...Option) *Status {
	if err == nil {
		return nil
	}

	var st *Status
	if errors.As(err, &st) {
		wrapped := &Status{
			code:     st.code,
			category: st.category,
			message:  message,
			cause:    err,
			kind:     st.kind,
		}
		for _, opt := range opts {
			opt(wrapped)
		}
		return wrapped
	}

	return New(CodeInternal, message, append(opts, WithCause(err))...)
}

// AsStatus attempts to extract a *Status from an error chain.
// Returns nil if none is found.
func AsStatus(err error) *Status {
	var st *Status
	if errors.As(err, &st) {
		return st
	}
	return nil
}

// Is checks if any error in the chain carries the given code.
func Is(err error, code Code) bool {
	var st *Status
	if errors.As(err, &st) {
		return st.code == code
	}
	return false
}

// CodeOf extracts the code from an error, if available.
// Returns empty string for non-Status errors.
func CodeOf(err error) Code {
	var st *Status
	if errors.As(err, &st) {
		return st.code
	}
	return ""
}

// IsRetryable checks if the error is retryable.
// Non-Status errors default to not retryable.
func IsRetryable(err error) bool {
	var st *Status
	if errors.As(err, &st) {
		return st.Retryable()
	}
	return false
}
