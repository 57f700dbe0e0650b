package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelError LogLevel = "error"
)

type Logger struct {
	level       LogLevel
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	fatalLogger *log.Logger
	RawBodyLog  bool
}

func NewLogger(level string, rawBodyLog bool) *Logger {
	logLevel := parseLogLevel(level)
	flags := log.Ldate | log.Ltime | log.Lmsgprefix

	return &Logger{
		level:       logLevel,
		infoLogger:  log.New(os.Stdout, "INFO: ", flags),
		errorLogger: log.New(os.Stderr, "ERROR: ", flags),
		debugLogger: log.New(os.Stdout, "DEBUG: ", flags),
		fatalLogger: log.New(os.Stderr, "FATAL: ", flags),
		RawBodyLog:  rawBodyLog,
	}
}

func NewDiscardLogger() *Logger {
	return &Logger{
		level:       LevelInfo,
		infoLogger:  log.New(io.Discard, "", 0),
		errorLogger: log.New(io.Discard, "", 0),
		debugLogger: log.New(io.Discard, "", 0),
		fatalLogger: log.New(io.Discard, "", 0),
	}
}

// NewWriterLogger sends every level to w. Used by tests that inspect log output.
func NewWriterLogger(w io.Writer, level string) *Logger {
	return &Logger{
		level:       parseLogLevel(level),
		infoLogger:  log.New(w, "INFO: ", log.Lmsgprefix),
		errorLogger: log.New(w, "ERROR: ", log.Lmsgprefix),
		debugLogger: log.New(w, "DEBUG: ", log.Lmsgprefix),
		fatalLogger: log.New(w, "FATAL: ", log.Lmsgprefix),
	}
}

func parseLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// withRunID prefixes the message with the run or request id when one is set.
func withRunID(runID *string, format string) string {
	if runID == nil || *runID == "" {
		return format
	}
	return fmt.Sprintf("[%s] %s", *runID, format)
}

func (l *Logger) Info(runID *string, format string, v ...any) {
	if l.level == LevelError {
		return
	}
	l.infoLogger.Printf(withRunID(runID, format), v...)
}

func (l *Logger) Error(runID *string, format string, v ...any) {
	l.errorLogger.Printf(withRunID(runID, format), v...)
}

func (l *Logger) Debug(runID *string, format string, v ...any) {
	if l.level != LevelDebug {
		return
	}
	l.debugLogger.Printf(withRunID(runID, format), v...)
}

func (l *Logger) Fatal(v ...any) {
	l.fatalLogger.Fatal(v...)
}
