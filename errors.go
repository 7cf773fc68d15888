package bina

import "fmt"

// LexError represents a malformed lexical construct. Context carries the
// source line the offending character sits on.
type LexError struct {
	Message string
	Line    int
	Context string
}

func (e *LexError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("syntax error: %s on line %d: %q", e.Message, e.Line, e.Context)
	}
	return fmt.Sprintf("syntax error: %s on line %d", e.Message, e.Line)
}

// ParseError represents an unexpected or missing token.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...)}
}

// EvalError represents a failed operation during evaluation.
type EvalError struct {
	Message string
	Cause   error
}

func (e *EvalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *EvalError) Unwrap() error {
	return e.Cause
}

func evalErrorf(format string, args ...any) *EvalError {
	return &EvalError{Message: fmt.Sprintf(format, args...)}
}
