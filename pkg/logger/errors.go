package logger

import "errors"

var (
	// ErrNoSink is returned when both console and file output are disabled
	ErrNoSink = errors.New("console and file output are both disabled")

	// ErrInvalidLabel is returned when the label contains characters outside [A-Za-z0-9]
	ErrInvalidLabel = errors.New("label must contain only letters and digits")

	// ErrInvalidDirectory is returned when the log directory does not exist
	ErrInvalidDirectory = errors.New("log directory does not exist")

	// ErrInvalidMaxBytes is returned when the rotation threshold is not positive
	ErrInvalidMaxBytes = errors.New("max bytes must be positive")

	// ErrInvalidFormat is returned when the record format is not a known value
	ErrInvalidFormat = errors.New("unknown record format")

	// ErrInvalidConsoleStyle is returned when the console style is not a known value
	ErrInvalidConsoleStyle = errors.New("unknown console style")

	// ErrInvalidLevel is returned when the log level is not a known value
	ErrInvalidLevel = errors.New("unknown log level")

	// ErrWriteFailed is returned when the log file cannot be opened or appended to
	ErrWriteFailed = errors.New("log file write failed")

	// ErrClosed is returned when a record is logged after Close
	ErrClosed = errors.New("logger is closed")
)
