package expr

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrEmpty     = errors.New("expr: expression is empty")
	ErrUnsafe    = errors.New("expr: unsafe pattern")
	ErrSyntax    = errors.New("expr: syntax error")
	ErrUndefined = errors.New("expr: undefined at every sample point")
)

// SyntaxError reports where an expression failed to lex or parse.
type SyntaxError struct {
	Pos int    // Byte offset into the expression
	Msg string // What was wrong there
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expr: syntax error at offset %d: %s", e.Pos, e.Msg)
}

// Unwrap lets errors.Is match ErrSyntax.
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}
