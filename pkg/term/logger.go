package term

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/gernest/wow"
	"github.com/gernest/wow/spin"
	"github.com/morikuni/aec"
	"github.com/spf13/viper"
)

// Logger writes human-readable command output to the configured streams.
type Logger struct {
	*loggerArgs
	streamer       *wow.Wow
	streamSpinners map[LogStreamLevel]spin.Spinner
}

// NewLogger constructs new Logger instance writing to os.Stdout and os.Stderr by default.
func NewLogger(options ...LoggerOption) *Logger {
	var args = &loggerArgs{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	for i := range options {
		options[i](args)
	}

	return &Logger{
		loggerArgs: args,
		streamer:   wow.New(args.stderr, spin.Get(spin.Dots), ""),
		streamSpinners: map[LogStreamLevel]spin.Spinner{
			LogStreamSuccess: {Frames: []string{viper.GetString("cli.success_emoji")}},
			LogStreamOk:      {Frames: []string{viper.GetString("cli.ok_emoji")}},
			LogStreamError:   {Frames: []string{viper.GetString("cli.error_emoji")}},
			LogStreamWarning: {Frames: []string{viper.GetString("cli.warning_emoji")}},
			LogStreamInfo:    {Frames: []string{viper.GetString("cli.info_emoji")}},
		},
	}
}

func (l *Logger) Success(message string) {
	_, _ = fmt.Fprintln(l.stdout, aec.GreenF.Apply(message))
}

func (l *Logger) Successf(format string, a ...interface{}) {
	l.Success(fmt.Sprintf(format, a...))
}

// Info writes `message` to stdout as is.
func (l *Logger) Info(message string) {
	_, _ = fmt.Fprintln(l.stdout, message)
}

func (l *Logger) Infof(format string, a ...interface{}) {
	l.Info(fmt.Sprintf(format, a...))
}

func (l *Logger) Warningf(format string, a ...interface{}) {
	_, _ = fmt.Fprintln(l.stderr, viper.GetString("cli.warning_emoji"), fmt.Sprintf(format, a...))
}

// Failf writes failure notice to stdout.
func (l *Logger) Failf(format string, a ...interface{}) {
	_, _ = fmt.Fprintln(l.stdout, aec.LightRedF.Apply(fmt.Sprintf(format, a...)))
}

func (l *Logger) Errorf(format string, a ...interface{}) {
	_, _ = fmt.Fprintln(l.stderr, aec.LightRedF.Apply(fmt.Sprintf(format, a...)))
}

// Write writes raw `payload` to stdout without any decoration or line break.
func (l *Logger) Write(payload []byte) (int, error) {
	return l.stdout.Write(payload)
}

func (l *Logger) NewLine() {
	_, _ = fmt.Fprintln(l.stdout)
}

func init() {
	log.SetOutput(ioutil.Discard)
}
