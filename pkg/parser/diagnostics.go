package parser

import (
	"errors"
	"fmt"

	"mica/interpreter-go/pkg/lexer"
)

var (
	// ErrSyntax is the sentinel wrapped by every ParseError.
	ErrSyntax = errors.New("parser: syntax error")

	// ErrConstWithoutInitializer reports `const name;`.
	ErrConstWithoutInitializer = errors.New("must assign value to constant expression; no value provided")
)

// ParseError names the token the parser could not accept.
type ParseError struct {
	Message string
	Found   lexer.Token
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parser: unexpected token found '%s'. %s", e.Found, e.Message)
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrSyntax, e.Err}
	}
	return []error{ErrSyntax}
}

func unexpected(found lexer.Token, message string) *ParseError {
	return &ParseError{Message: message, Found: found}
}

func unexpectedf(found lexer.Token, format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...), Found: found}
}
