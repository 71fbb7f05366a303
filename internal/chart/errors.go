package chart

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every validation failure in Render.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError names the rejected argument and why.
type ArgumentError struct {
	Arg    string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrInvalidArgument, e.Arg, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func invalid(arg, format string, a ...any) *ArgumentError {
	return &ArgumentError{Arg: arg, Reason: fmt.Sprintf(format, a...)}
}
