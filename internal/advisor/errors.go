package advisor

import "fmt"

// CompletionError represents a failed or unusable completion call.
type CompletionError struct {
	Message string
	Cause   error
}

func (e *CompletionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("completion failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("completion failed: %s", e.Message)
}

func (e *CompletionError) Unwrap() error {
	return e.Cause
}

// ParseError represents model output that was not valid JSON after sanitization.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// SchemaError represents model output that parsed as JSON but does not match
// the expected response shape. Handled the same way as a ParseError.
type SchemaError struct {
	Message string
	Cause   error
}

func (e *SchemaError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("schema error: %s", e.Message)
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// ValidationError represents invalid caller input. Unlike the recoverable
// errors above it is surfaced to the caller and never masked by a fallback.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}
