// Package logger provides leveled structured logging with a colorized
// console sink and durable persistence to size-rotated log files.
//
// Invariants:
// - At least one sink (console or file) is enabled; New rejects a config with both disabled.
// - A logger owns exactly one open file handle at a time while file output is enabled.
// - A record that would push the current file past MaxBytes is written to a fresh file instead.
// - No record is silently dropped: sink failures are returned to the caller and mirrored on the diagnostic channel.
// - The console and file sinks fail independently; one sink's failure never suppresses the other.
//
// Usage:
//
//	log, err := logger.New(logger.Config{
//		Format:    logger.FormatDelimited,
//		Label:     "svc",
//		Directory: "/var/log/myapp",
//	})
//	if err != nil {
//		return err
//	}
//	defer log.Close()
//	log.Info("Auth", "token refreshed")
package logger
