package oauth2

import "fmt"

// ConfigurationError reports a Config field missing for the operation
// attempted, or an unregistered grant type. It is always raised before any
// network call and is never retried.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("oauth2 configuration: %s", e.Reason)
}

// ProtocolError carries the error code and description reported by an
// authorization or token server, or synthesized when a non-success response
// carries no error field.
type ProtocolError struct {
	Code        string
	Description string
}

func (e *ProtocolError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("oauth2 protocol error: %s", e.Code)
	}
	return fmt.Sprintf("oauth2 protocol error: %s (%s)", e.Description, e.Code)
}

// StateMismatchError reports that the state echoed back on the redirect
// callback differs from the one sent with the authorization request. This is
// the anti-CSRF check failing; the callback must not be trusted.
type StateMismatchError struct {
	Expected string
	Actual   string
}

func (e *StateMismatchError) Error() string {
	return fmt.Sprintf("oauth2 state mismatch: expected %q, got %q", e.Expected, e.Actual)
}

// UnknownTokenTypeError reports a token type no attacher is registered for.
type UnknownTokenTypeError struct {
	Type string
}

func (e *UnknownTokenTypeError) Error() string {
	return fmt.Sprintf("unknown token type %q", e.Type)
}
