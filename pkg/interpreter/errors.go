package interpreter

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is wrapped by every *DomainError.
	ErrDomain = errors.New("f argument out of domain")
	// ErrOverflow is wrapped by every *OverflowError.
	ErrOverflow = errors.New("integer overflow")
	// ErrDepthExceeded is returned once nesting passes Config.MaxDepth. Cyclic
	// trees end here as well.
	ErrDepthExceeded = errors.New("evaluation depth exceeded")

	errNilExpression = errors.New("nil expression")
)

// DomainError reports a non-positive f argument under DomainStrict.
type DomainError struct {
	Argument int64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("f requires a positive argument, got %d", e.Argument)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// OverflowError reports an addition or multiplication outside int64.
type OverflowError struct {
	Operator    string
	Left, Right int64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("integer overflow: %d %s %d", e.Left, e.Operator, e.Right)
}

func (e *OverflowError) Unwrap() error { return ErrOverflow }
