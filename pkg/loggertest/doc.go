// Package loggertest provides logger constructors for tests.
//
// Production code constructs loggers through logger.New with a real
// directory; tests that only need a working logger, or need to assert on
// what was logged, use these helpers instead of repeating the temp-dir
// setup everywhere.
package loggertest
