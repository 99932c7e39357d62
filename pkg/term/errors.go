package term

import "github.com/pkg/errors"

var (
	// ErrInvalidArgs is returned when command arguments or options fail to parse.
	ErrInvalidArgs = errors.New("invalid command arguments")
)
