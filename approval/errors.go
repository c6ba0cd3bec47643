package approval

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest = errors.New("approval: invalid request")
	ErrInvalidChain   = errors.New("approval: invalid chain")
)

// RequestError reports a request rejected before it entered the chain.
type RequestError struct {
	Field string
	Value interface{}
	Err   error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("approval.Process [%s=%v]: %v", e.Field, e.Value, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ChainError reports a stage list that cannot form a chain.
type ChainError struct {
	Op    string
	Stage string
	Err   error
}

func (e *ChainError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("approval.%s [%s]: %v", e.Op, e.Stage, e.Err)
	}
	return fmt.Sprintf("approval.%s: %v", e.Op, e.Err)
}

func (e *ChainError) Unwrap() error {
	return e.Err
}

func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

func IsInvalidChain(err error) bool {
	return errors.Is(err, ErrInvalidChain)
}

func invalidChain(stage, format string, args ...interface{}) error {
	return &ChainError{
		Op:    "NewChain",
		Stage: stage,
		Err:   fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidChain}, args...)...),
	}
}
