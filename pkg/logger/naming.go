package logger

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

const (
	// defaultLabel is used when no label is configured. It is also the only
	// label that does not get a ".log" suffix appended to its stem.
	defaultLabel = "log"

	// stampLayout is the instantiation timestamp embedded in every file name
	// produced by one logger session. Colons are not filesystem-safe.
	stampLayout = "2006-01-02T15-04-05"
)

var labelPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// resolveLabel validates a label and derives the file-name stem.
// Custom labels become "<label>.log"; the default label stays bare so the
// default file is "log.<stamp>.<ext>" rather than "log.log.<stamp>.<ext>".
func resolveLabel(label string) (string, error) {
	if label == "" || label == defaultLabel {
		return defaultLabel, nil
	}
	if !labelPattern.MatchString(label) {
		return "", fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	return label + ".log", nil
}

// resolveDirectory validates that the directory exists and normalizes it to
// end with a path separator. It never creates the directory.
func resolveDirectory(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDirectory, dir)
	}
	if !strings.HasSuffix(dir, string(os.PathSeparator)) {
		dir += string(os.PathSeparator)
	}
	return dir, nil
}

// fileName builds the log file name for a rotation index. The first file of
// a session has no index suffix; the file created by rotation n carries _n.
func fileName(stem, stamp string, index int, ext string) string {
	if index == 0 {
		return fmt.Sprintf("%s.%s.%s", stem, stamp, ext)
	}
	return fmt.Sprintf("%s.%s_%d.%s", stem, stamp, index, ext)
}
