package litespec

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	// ErrExpression marks a malformed @can or @if expression.
	ErrExpression ErrorKind = "expression"
	// ErrAnnotation marks an annotation whose argument is missing or unusable.
	ErrAnnotation ErrorKind = "annotation"
	// ErrStructure marks unbalanced blocks and unparseable headers.
	ErrStructure ErrorKind = "structure"
)

type ParseError struct {
	Kind    ErrorKind
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}

	return e.Message
}

func parseErrorf(kind ErrorKind, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// atLine stamps the source line onto an error that doesn't carry one yet.
func atLine(err error, line int) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Line == 0 {
		pe.Line = line
	}

	return err
}
