package shared

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/timoth-y/fabnquery/pkg/term"
)

// ErrReported marks errors which were already displayed to the user.
var ErrReported = errors.New("error reported")

type reportedError struct {
	error
}

func (e reportedError) Is(target error) bool {
	return target == ErrReported
}

func (e reportedError) Unwrap() error {
	return e.error
}

// Report displays `err` prefixed with `message` along with its diagnostic trace on stdout,
// and marks it as reported.
func Report(logger *term.Logger, err error, message string) error {
	if err == nil || errors.Is(err, ErrReported) {
		return err
	}

	logger.Failf("%s %v", message, err)
	logger.Infof("%+v", err)

	return reportedError{err}
}

// WithHandleErrors wraps cobra.Command with error handling middleware.
//
// Invalid arguments errors are followed by the command usage,
// others are reported with their trace. Either way the error is returned, so the process exits with failure.
func WithHandleErrors(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if err == nil || errors.Is(err, ErrReported) {
			return err
		}

		if errors.Is(err, term.ErrInvalidArgs) {
			cmd.PrintErrln(viper.GetString("cli.error_emoji"), "Error:", err)
			_ = cmd.Usage()
			return reportedError{err}
		}

		return Report(NewLogger(cmd), err, fmt.Sprintf("%s Error:", viper.GetString("cli.error_emoji")))
	}
}

// NewLogger constructs term.Logger writing to `cmd` output streams.
func NewLogger(cmd *cobra.Command) *term.Logger {
	return term.NewLogger(
		term.WithStdout(cmd.OutOrStdout()),
		term.WithStderr(cmd.ErrOrStderr()),
		term.WithStream(IsInteractive()),
	)
}
