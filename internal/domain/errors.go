package domain

import (
	"errors"
	"fmt"
	"strings"
)

// The error taxonomy. Every failure a tool can surface belongs to exactly
// one of these families:
//
//   - ValidationError: the caller's arguments fail the tool's input schema.
//   - BusinessError: the platform accepted the request but rejected it for
//     domain reasons (userErrors, or a null payload on a lookup).
//   - TransportError: network failure, non-2xx status, malformed body, or a
//     GraphQL-level errors array.
//   - ConfigurationError: startup wiring problems (missing credentials,
//     duplicate tool registration). Fatal, never per-call.

// ValidationError reports a single argument that failed validation.
// Field names the offending argument so the caller can correct it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid arguments: " + e.Reason
	}
	return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the named field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// UserError is one field-level rejection returned inside a mutation payload.
// Field is the path to the offending input field as reported by the API.
type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// BusinessError is a domain-level rejection by the platform, distinct from a
// transport failure. Message carries the full "Failed to <op>: ..." text;
// Hint, when present, is a friendlier pointer derived from the userError
// field names rather than from the message prose.
type BusinessError struct {
	Op      string
	Message string
	Hint    string
}

func (e *BusinessError) Error() string {
	if e.Hint != "" {
		return e.Message + " (" + e.Hint + ")"
	}
	return e.Message
}

// UserErrorsToError aggregates a non-empty userErrors list into one
// BusinessError, joining each "field: message" pair with ", " under a
// "Failed to <op>" prefix. An empty list yields nil, so callers can write
//
//	if err := domain.UserErrorsToError(op, payload.UserErrors); err != nil { ... }
//
// before touching the rest of the payload.
func UserErrorsToError(op string, userErrors []UserError) error {
	if len(userErrors) == 0 {
		return nil
	}
	pairs := make([]string, 0, len(userErrors))
	for _, ue := range userErrors {
		field := strings.Join(ue.Field, ".")
		if field == "" {
			pairs = append(pairs, ue.Message)
			continue
		}
		pairs = append(pairs, field+": "+ue.Message)
	}
	return &BusinessError{
		Op:      op,
		Message: fmt.Sprintf("Failed to %s: %s", op, strings.Join(pairs, ", ")),
		Hint:    hintForUserErrors(userErrors),
	}
}

// NotFoundError builds the BusinessError raised when a get-by-id lookup
// returns a null payload. The message always contains "not found".
func NotFoundError(op, what, id string) *BusinessError {
	return &BusinessError{
		Op:      op,
		Message: fmt.Sprintf("Failed to %s: %s not found: %s", op, what, id),
	}
}

// EmptyPayloadError reports a mutation that came back with neither a
// payload nor userErrors. Raised explicitly instead of being left to a nil
// dereference downstream.
func EmptyPayloadError(op string) *BusinessError {
	return &BusinessError{
		Op:      op,
		Message: fmt.Sprintf("Failed to %s: empty mutation payload", op),
	}
}

// hintForUserErrors derives a friendly hint from the field names of the
// reported userErrors. Hints are keyed on field names, never on message
// wording, so they survive upstream copy changes.
func hintForUserErrors(userErrors []UserError) string {
	for _, ue := range userErrors {
		for _, segment := range ue.Field {
			switch {
			case strings.Contains(strings.ToLower(segment), "variant"):
				return "check that the variant id exists and is available"
			case strings.Contains(strings.ToLower(segment), "customer"):
				return "check that the customer id exists"
			case strings.Contains(strings.ToLower(segment), "location"):
				return "check that the location id exists and is active"
			}
		}
	}
	return ""
}

// TransportError wraps a failed network round trip: connection errors,
// non-success HTTP statuses, undecodable bodies, and GraphQL-level error
// arrays (which indicate a malformed operation or bad credentials, not a
// recoverable business condition).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// ConfigurationError reports a startup wiring problem. It is fatal and
// should surface at process start, not on first call.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string { return "configuration error: " + e.Reason }

// WrapToolError gives every failure escaping a tool the uniform shape
// "Failed to <op>: <original message>", preserving the original text
// verbatim and the original error in the chain. BusinessErrors already
// carry the label and pass through unchanged.
func WrapToolError(op string, err error) error {
	if err == nil {
		return nil
	}
	var be *BusinessError
	if errors.As(err, &be) {
		return err
	}
	return fmt.Errorf("Failed to %s: %w", op, err)
}
