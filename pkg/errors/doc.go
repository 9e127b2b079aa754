// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Collectors never surface errors to their callers. StructuredError is used
// below them (the process runner and the pseudo-file parser) and above them
// (configuration loading and the HTTP layer), where the code selects the
// response status.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnavailable,
//	    "failed to launch nvidia-smi",
//	    cause,
//	    map[string]any{
//	        "command": "nvidia-smi",
//	    },
//	)
//
//	if errors.CodeOf(err) == errors.ErrCodeInvalidRequest {
//	    // reject the request
//	}
package errors
