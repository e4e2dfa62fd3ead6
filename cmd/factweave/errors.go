// cmd/factweave/errors.go
package main

import "fmt"

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeNews   ErrorType = "news"
	ErrorTypeSearch ErrorType = "search"
	ErrorTypeFetch  ErrorType = "fetch"
	ErrorTypeModel  ErrorType = "model"
	ErrorTypeParse  ErrorType = "parse"
)

// Error codes
const (
	ErrNewsRequest  = "NEWS_001"
	ErrNewsStatus   = "NEWS_002"
	ErrSearchFetch  = "SEARCH_001"
	ErrSearchStatus = "SEARCH_002"
	ErrFetchRequest = "FETCH_001"
	ErrFetchStatus  = "FETCH_002"
	ErrModelCall    = "MODEL_001"
	ErrModelEmpty   = "MODEL_002"
)

// AgentError is the typed error used at external-collaborator boundaries.
// Agents consume these and degrade per policy; they never propagate them.
type AgentError struct {
	Type    ErrorType
	Code    string
	Message string
	Inner   error
}

func (e *AgentError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("[%s-%s] %s: %v", e.Type, e.Code, e.Message, e.Inner)
	}
	return fmt.Sprintf("[%s-%s] %s", e.Type, e.Code, e.Message)
}

func (e *AgentError) Unwrap() error {
	return e.Inner
}

// NewAgentError creates a new AgentError
func NewAgentError(errType ErrorType, code string, message string, inner error) *AgentError {
	return &AgentError{
		Type:    errType,
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

// ParseError reports an external payload that did not match the expected
// schema. Raised at the boundary of each collaborator call instead of letting
// loosely-typed decoding failures escape as generic errors.
type ParseError struct {
	Source string
	Reason string
	Inner  error
}

func (e *ParseError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("parse %s: %s: %v", e.Source, e.Reason, e.Inner)
	}
	return fmt.Sprintf("parse %s: %s", e.Source, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Inner
}
