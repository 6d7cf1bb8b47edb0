package payment

import "fmt"

// The error kinds below form a closed taxonomy. Callers match with errors.As
// instead of inspecting status codes by convention.

// DeclinedError is a gateway decline: recoverable, the customer may retry
// with a different payment method. Message is diagnostic (for logs and order
// notes); UserMessage, when set, is safe to show the customer.
type DeclinedError struct {
	Code        string
	Message     string
	UserMessage string
}

func (e *DeclinedError) Error() string {
	return e.Message
}

// ValidationError means the response does not apply to the order's current
// state (duplicate delivery, stale notification). Not retryable with the same
// response; the customer sees a generic "contact support" message.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("transaction validation failed: %s", e.Reason)
}

// MalformedError means the payload could not be parsed into a known response
// shape. The order may not even be resolvable; specifics never reach the
// customer.
type MalformedError struct {
	Reason string
	Err    error
}

func (e *MalformedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed gateway response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed gateway response: %s", e.Reason)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// ConfigError is a programming error, e.g. capture invoked on a gateway
// without capture support. It fails loudly outside the auto-capture path.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("gateway configuration error: %s", e.Reason)
}
