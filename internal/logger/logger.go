package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Fields represents key-value pairs for structured logging
type Fields map[string]interface{}

// Logger defines the interface for logging operations
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	WithFields(fields Fields) Logger
	WithError(err error) Logger
}

// LogrusLogger implements Logger on top of a logrus entry so that fields
// attached with WithFields survive into every subsequent call.
type LogrusLogger struct {
	*logrus.Entry
}

// WithFields returns a child logger carrying fields
func (l *LogrusLogger) WithFields(fields Fields) Logger {
	return &LogrusLogger{Entry: l.Entry.WithFields(logrus.Fields(fields))}
}

// WithError returns a child logger carrying the error under the "error" key
func (l *LogrusLogger) WithError(err error) Logger {
	return &LogrusLogger{Entry: l.Entry.WithError(err)}
}

var _ Logger = (*LogrusLogger)(nil)

// New creates a JSON logger writing to stdout
func New(level string) Logger {
	return NewWithOutput(level, os.Stdout)
}

// NewWithOutput creates a JSON logger writing to out
func NewWithOutput(level string, out io.Writer) Logger {
	logrusLogger := logrus.New()
	logrusLogger.SetOutput(out)
	logrusLogger.SetFormatter(&logrus.JSONFormatter{})
	logrusLogger.SetLevel(parseLevel(level))

	return &LogrusLogger{Entry: logrus.NewEntry(logrusLogger)}
}

// parseLevel accepts debug, info, warn and error; anything else is info
func parseLevel(level string) logrus.Level {
	switch level {
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
