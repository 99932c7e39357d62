package fabric

import "github.com/pkg/errors"

var (
	// ErrConfig is returned when the connection profile can't be loaded. Nothing is connected at that point.
	ErrConfig = errors.New("configuration error")
	// ErrConnection is returned when gateway session can't be established.
	ErrConnection = errors.New("connection error")
	// ErrResolution is returned when channel or contract can't be resolved.
	ErrResolution = errors.New("resolution error")
	// ErrQuery is returned when contract fails to evaluate the query.
	ErrQuery = errors.New("query error")
)

// runError attaches failure kind to its cause, so that both are reachable with errors.Is.
type runError struct {
	kind  error
	cause error
}

func newRunError(kind, cause error) error {
	return errors.WithStack(&runError{kind: kind, cause: cause})
}

func (e *runError) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *runError) Is(target error) bool {
	return target == e.kind
}

func (e *runError) Unwrap() error {
	return e.cause
}
