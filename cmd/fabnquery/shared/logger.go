package shared

import (
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

const module = "fabnquery"

// Logger is an instance of the shared diagnostic logger.
var Logger = logging.MustGetLogger(module)

const (
	format = "%{color}%{time:2006.01.02 15:04:05} " +
		"%{id:04x} %{level:.4s}%{color:reset} " +
		"[%{module}] %{color:bold}%{shortfunc}%{color:reset} -> %{message}"
)

func init() {
	initLogger()
}

func initLogger() {
	backend := logging.NewBackendFormatter(
		logging.NewLogBackend(os.Stderr, "", 0),
		logging.MustStringFormatter(format),
	)

	level, err := logging.LogLevel(viper.GetString("logging"))
	if err != nil {
		level = logging.INFO
	}

	logging.SetBackend(backend)
	logging.SetLevel(level, module)
}

// IsInteractive determines whether stderr is attached to a terminal,
// in which case spinners can be displayed.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
