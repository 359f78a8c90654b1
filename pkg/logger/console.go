package logger

import (
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// consoleSink renders records to a terminal stream through zerolog.
// Raw style emits the event as a single structured line; pretty style runs
// it through zerolog's ConsoleWriter for colorized, level-coded output.
// Emission is serialized under mu so one call's line is never interleaved
// with another's, and so write errors can be attributed to the call that
// caused them (zerolog itself swallows writer errors).
type consoleSink struct {
	mu  sync.Mutex
	log zerolog.Logger
	cap *captureWriter
}

// captureWriter records the error of the most recent write so the sink can
// report it to the caller. Only touched under consoleSink.mu.
type captureWriter struct {
	w   io.Writer
	err error
}

func (c *captureWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	if err != nil {
		c.err = err
	}
	return n, err
}

// newConsoleSink builds a sink writing to out in the given style
func newConsoleSink(style ConsoleStyle, out io.Writer) *consoleSink {
	cw := &captureWriter{w: out}
	var w io.Writer = cw
	if style == StylePretty {
		w = zerolog.ConsoleWriter{
			Out:        cw,
			TimeFormat: time.RFC3339,
		}
	}
	return &consoleSink{
		log: zerolog.New(w),
		cap: cw,
	}
}

// emit renders one record. The timestamp is the one captured by the facade,
// so console and file report the same instant for the same call.
func (c *consoleSink) emit(lvl Level, subject, message string, ts time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cap.err = nil
	c.log.WithLevel(lvl.zerolog()).
		Time(zerolog.TimestampFieldName, ts).
		Str("subject", subject).
		Msg(message)
	return c.cap.err
}

// zerolog maps a Level onto the corresponding zerolog level
func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
