package compiler

import (
	"fmt"

	"github.com/aretw0/magazine/pkg/domain"
)

// ParseError reports a malformed line of a text definition.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Msg
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Is makes parse failures match domain.ErrInvalidDefinition.
func (e *ParseError) Is(target error) bool {
	return target == domain.ErrInvalidDefinition
}

func parseErrorf(line int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}
