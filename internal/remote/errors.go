package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates a request timeout
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates the service refused the connection
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates a DNS resolution failure
	ErrTypeDNS
	// ErrTypeHTTP indicates a non-200 status code
	ErrTypeHTTP
	// ErrTypeRateLimited indicates HTTP 429 or a local throttle failure
	ErrTypeRateLimited
	// ErrTypeParse indicates a malformed response body
	ErrTypeParse
	// ErrTypeCanceled indicates the request context was canceled
	ErrTypeCanceled
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeRateLimited:
		return "Rate Limited"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeCanceled:
		return "Canceled"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error represents a failed call to a remote service
type Error struct {
	Type       ErrorType // Category of error
	Service    string    // Service name, e.g. "geocoding"
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	prefix := e.Type.String()
	if e.Service != "" {
		prefix = e.Service + ": " + prefix
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", prefix, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError analyzes a transport error and returns a typed Error
func ClassifyNetworkError(err error, service string) *Error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return &Error{Type: ErrTypeCanceled, Service: service, Message: "Request canceled", Err: err}
	}

	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return &Error{Type: ErrTypeTimeout, Service: service, Message: "Request timed out", Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &Error{
			Type:    ErrTypeDNS,
			Service: service,
			Message: fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:     err,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if errors.Is(opErr.Err, syscall.ECONNREFUSED) {
			return &Error{Type: ErrTypeConnectionRefused, Service: service, Message: "Connection refused", Err: err}
		}
		if errors.Is(opErr.Err, syscall.EHOSTUNREACH) || errors.Is(opErr.Err, syscall.ENETUNREACH) {
			return &Error{Type: ErrTypeNetwork, Service: service, Message: "Network unreachable", Err: err}
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != err {
		return ClassifyNetworkError(urlErr.Err, service)
	}

	return &Error{Type: ErrTypeNetwork, Service: service, Message: "Network error occurred", Err: err}
}

// NewNetworkError creates a network-level error with automatic classification
func NewNetworkError(service, message string, err error) *Error {
	classified := ClassifyNetworkError(err, service)
	if classified == nil {
		return &Error{Type: ErrTypeNetwork, Service: service, Message: message}
	}
	// Keep the classified message for the specific cases, the caller's otherwise
	if classified.Type == ErrTypeNetwork {
		classified.Message = message
	}
	return classified
}

// NewHTTPError creates an HTTP-level error
func NewHTTPError(service string, statusCode int, message string) *Error {
	t := ErrTypeHTTP
	if statusCode == 429 {
		t = ErrTypeRateLimited
	}
	return &Error{Type: t, Service: service, Message: message, StatusCode: statusCode}
}

// NewParseError creates a parsing error
func NewParseError(service, message string, err error) *Error {
	return &Error{Type: ErrTypeParse, Service: service, Message: message, Err: err}
}

func typeOf(err error) (ErrorType, bool) {
	var remoteErr *Error
	if errors.As(err, &remoteErr) {
		return remoteErr.Type, true
	}
	return 0, false
}

// IsNetworkError checks if an error is a network error (including timeout, connection refused, DNS)
func IsNetworkError(err error) bool {
	t, ok := typeOf(err)
	return ok && (t == ErrTypeNetwork || t == ErrTypeTimeout || t == ErrTypeConnectionRefused || t == ErrTypeDNS)
}

// IsHTTPError checks if an error is an HTTP error (including rate limiting)
func IsHTTPError(err error) bool {
	t, ok := typeOf(err)
	return ok && (t == ErrTypeHTTP || t == ErrTypeRateLimited)
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeParse
}

// IsCanceled checks if an error is a context cancellation
func IsCanceled(err error) bool {
	t, ok := typeOf(err)
	return ok && t == ErrTypeCanceled
}

// ShortMessage returns a concise, user-facing one-line message for an error
func ShortMessage(err error) string {
	if err == nil {
		return ""
	}

	var remoteErr *Error
	if !errors.As(err, &remoteErr) {
		return err.Error()
	}

	switch remoteErr.Type {
	case ErrTypeTimeout:
		return serviceLabel(remoteErr.Service) + " not responding (timeout)"
	case ErrTypeConnectionRefused:
		return serviceLabel(remoteErr.Service) + " refused connection"
	case ErrTypeDNS:
		return "Cannot resolve service hostname - check connection"
	case ErrTypeNetwork:
		return "Network error - check connection"
	case ErrTypeRateLimited:
		return "Too many requests - try again shortly"
	case ErrTypeHTTP:
		return fmt.Sprintf("Service error (HTTP %d)", remoteErr.StatusCode)
	case ErrTypeParse:
		return "Failed to parse service response"
	case ErrTypeCanceled:
		return "Request canceled"
	default:
		return remoteErr.Message
	}
}

func serviceLabel(service string) string {
	switch service {
	case "geocoding":
		return "Location service"
	case "forecast":
		return "Weather service"
	default:
		return "Service"
	}
}
