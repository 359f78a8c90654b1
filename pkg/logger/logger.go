package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Logger is the public entry point. It sequences each call as
// capture timestamp → redact → encode → console emit → file append.
// The two sinks are independent: a console failure is reported on the
// diagnostic channel and never blocks the file path, and a file failure is
// returned to the caller after the console line has already gone out.
type Logger struct {
	cfg      Config
	id       uuid.UUID
	enc      encoder
	console  *consoleSink
	sess     *session
	redactor *Redactor
	diag     zerolog.Logger
}

// New creates a logger. Validation is all-or-nothing: on error no file is
// created and no partially-initialized logger escapes. The first log file
// opens eagerly here, so a bad directory or permission problem fails
// construction instead of the first log call.
func New(cfg Config) (*Logger, error) {
	if cfg.DisableConsole && cfg.DisableFile {
		return nil, ErrNoSink
	}
	if cfg.MaxBytes == 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	if cfg.MaxBytes < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxBytes, cfg.MaxBytes)
	}

	stem, err := resolveLabel(cfg.Label)
	if err != nil {
		return nil, err
	}
	enc, err := newEncoder(cfg.Format)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		cfg: cfg,
		id:  uuid.New(),
		enc: enc,
	}

	if !cfg.DisableFile {
		dir, err := resolveDirectory(cfg.Directory)
		if err != nil {
			return nil, err
		}
		stamp := time.Now().Format(stampLayout)
		l.sess, err = openSession(dir, stem, cfg.Format.ext(), stamp, cfg.MaxBytes)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
	}
	if !cfg.DisableConsole {
		l.console = newConsoleSink(cfg.ConsoleStyle, os.Stdout)
	}
	if cfg.Redaction {
		l.redactor = NewRedactor()
	}

	l.diag = zerolog.New(os.Stderr).With().
		Timestamp().
		Str("component", "rotalog").
		Str("session_id", l.id.String()).
		Logger()

	return l, nil
}

// Debug logs a debug record
func (l *Logger) Debug(subject, message string) error {
	return l.log(LevelDebug, subject, message)
}

// Info logs an info record
func (l *Logger) Info(subject, message string) error {
	return l.log(LevelInfo, subject, message)
}

// Warn logs a warning record
func (l *Logger) Warn(subject, message string) error {
	return l.log(LevelWarn, subject, message)
}

// Error logs an error record
func (l *Logger) Error(subject, message string) error {
	return l.log(LevelError, subject, message)
}

func (l *Logger) log(lvl Level, subject, message string) error {
	if lvl < l.cfg.Level {
		return nil
	}

	ts := time.Now()
	if l.redactor != nil {
		subject = l.redactor.Redact(subject)
		message = l.redactor.Redact(message)
	}

	record, err := l.enc.encode(entry{
		Time:    ts,
		Level:   lvl,
		Subject: subject,
		Message: message,
	})
	if err != nil {
		// Programmer error for the fixed field set; see encoder.go.
		return err
	}

	if l.console != nil {
		if cerr := l.console.emit(lvl, subject, message, ts); cerr != nil {
			l.diag.Error().Err(cerr).Msg("console emit failed")
		}
	}
	if l.sess != nil {
		if ferr := l.sess.append(record); ferr != nil {
			l.diag.Error().Err(ferr).Msg("file append failed")
			return ferr
		}
	}
	return nil
}

// Close flushes and closes the current log file. Closing twice is a no-op.
func (l *Logger) Close() error {
	if l.sess != nil {
		return l.sess.Close()
	}
	return nil
}
