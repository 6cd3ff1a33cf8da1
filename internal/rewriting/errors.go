// Package rewriting invokes the LLM collaborator to rewrite a resume
// summary emphasizing the dominant RoleColor.
package rewriting

import "fmt"

// ConfigError represents a missing or invalid rewrite configuration, such
// as an absent API key. It is surfaced before any network attempt.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("rewrite config error: %s", e.Message)
}

// APICallError represents a failure in the LLM service call
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call error: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}
