package term

type LogStreamLevel int

const (
	LogStreamSuccess LogStreamLevel = iota
	LogStreamOk
	LogStreamError
	LogStreamWarning
	LogStreamInfo
)

// Stream wraps `fn` call into interactive logging with progress,
// displaying `start` message on loading, `complete` on successful end,
// and err return value on failure.
//
// When streaming is disabled `fn` is called as is.
func (l *Logger) Stream(fn func() error, start, complete string) error {
	if !l.stream {
		return fn()
	}

	l.streamer.Start()
	defer l.streamer.Stop()

	l.streamer.Text(" " + start)
	if err := fn(); err != nil {
		l.streamer.PersistWith(l.streamSpinners[LogStreamError], " "+err.Error())
		return err
	}

	l.streamer.PersistWith(l.streamSpinners[LogStreamSuccess], " "+complete)

	return nil
}
