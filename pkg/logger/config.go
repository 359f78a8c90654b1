package logger

import "fmt"

// DefaultMaxBytes is the rotation threshold used when Config.MaxBytes is zero
const DefaultMaxBytes = 10 * 1024 * 1024

// Format selects the on-disk record layout
type Format int8

const (
	// FormatDelimited writes quoted, comma-separated records (.csv files)
	FormatDelimited Format = iota

	// FormatLineObject writes one JSON object per line (.txt files)
	FormatLineObject
)

// String returns the config-file name of the format
func (f Format) String() string {
	switch f {
	case FormatDelimited:
		return "delimited"
	case FormatLineObject:
		return "line-object"
	default:
		return fmt.Sprintf("format(%d)", int8(f))
	}
}

// ext returns the file extension for log files in this format
func (f Format) ext() string {
	if f == FormatLineObject {
		return "txt"
	}
	return "csv"
}

// ParseFormat parses a format name from config
func ParseFormat(s string) (Format, error) {
	switch s {
	case "delimited":
		return FormatDelimited, nil
	case "line-object":
		return FormatLineObject, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// ConsoleStyle selects how records are rendered on the console
type ConsoleStyle int8

const (
	// StylePretty renders colorized human-readable lines
	StylePretty ConsoleStyle = iota

	// StyleRaw renders single-line structured output
	StyleRaw
)

// String returns the config-file name of the style
func (s ConsoleStyle) String() string {
	switch s {
	case StylePretty:
		return "pretty"
	case StyleRaw:
		return "raw"
	default:
		return fmt.Sprintf("style(%d)", int8(s))
	}
}

// ParseConsoleStyle parses a console style name from config
func ParseConsoleStyle(s string) (ConsoleStyle, error) {
	switch s {
	case "pretty":
		return StylePretty, nil
	case "raw":
		return StyleRaw, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidConsoleStyle, s)
	}
}

// Level is the severity of a log record
type Level int8

const (
	// LevelDebug is the lowest severity
	LevelDebug Level = iota
	// LevelInfo is routine operational information
	LevelInfo
	// LevelWarn signals a recoverable anomaly
	LevelWarn
	// LevelError is the highest severity
	LevelError
)

// String returns the uppercase level name written into records
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int8(l))
	}
}

// ParseLevel parses a level name from config
func ParseLevel(s string) (Level, error) {
	switch s {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}

// Config holds logger configuration
type Config struct {
	Format         Format       // on-disk record layout
	DisableConsole bool         // suppress the console sink
	DisableFile    bool         // suppress the file sink
	ConsoleStyle   ConsoleStyle // raw or pretty console rendering
	Label          string       // file-name stem component, alphanumeric only
	Directory      string       // target directory for log files; must exist
	MaxBytes       int64        // rotation threshold in bytes; 0 means DefaultMaxBytes
	Level          Level        // minimum level; lower-severity calls are dropped
	Redaction      bool         // scrub secret-shaped values before any sink sees them
}

// DefaultConfig returns default logger configuration
func DefaultConfig() Config {
	return Config{
		Format:       FormatDelimited,
		ConsoleStyle: StylePretty,
		Directory:    ".",
		MaxBytes:     DefaultMaxBytes,
		Level:        LevelDebug,
	}
}
