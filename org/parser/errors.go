package parser

import "fmt"

// ErrorKind classifies parse failures.
type ErrorKind int

const (
	// ErrMalformedHeadline reports a parse call whose cursor was not
	// positioned at a valid headline opening.
	ErrMalformedHeadline ErrorKind = iota

	// ErrMalformedInlinetask reports a parse call whose cursor was not
	// positioned at a valid inline task opening.
	ErrMalformedInlinetask
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMalformedHeadline:
		return "malformed headline"
	case ErrMalformedInlinetask:
		return "malformed inline task"
	default:
		return "unknown"
	}
}

// ParseError reports a precondition violation. It carries the error kind
// and the offending span; message formatting is left to the caller.
type ParseError struct {
	Kind  ErrorKind
	Begin int
	End   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %d..%d", e.Kind, e.Begin, e.End)
}

// ConfigError reports an invalid parser configuration. It is returned once
// at construction time; parse calls never produce it.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid config: %v", e.Err)
	}
	return fmt.Sprintf("invalid config: %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
