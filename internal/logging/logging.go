// Package logging is a leveled, printf-style logger in the spirit of Python's logging module.
//
// Logging is done just like calling fmt.Sprintf:
//
//	logging.Info("Resolved %s to %s", key, value)
//
// Messages are handed to the current LoggingHandler, which by default is backed by zap and writes warnings and
// above to stderr. Verbose mode lowers the threshold to debug.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

const (
	DEBUG    = "DEBUG"
	INFO     = "INFO"
	NOTICE   = "NOTICE"
	WARNING  = "WARNING"
	ERROR    = "ERROR"
	CRITICAL = "CRITICAL"
)

// LoggingHandler is the pluggable sink that receives every log message
type LoggingHandler interface {
	SetVerbose(bool)
	Verbose() bool
	Output() io.Writer
	Emit(ctx *MessageContext, message string, args ...interface{}) error
	Printf(msg string, args ...interface{})
	Close()
}

var currentHandler LoggingHandler = NewHandler(os.Stderr)

// SetHandler sets the current handler of the library
func SetHandler(h LoggingHandler) {
	currentHandler = h
}

func CurrentHandler() LoggingHandler {
	return currentHandler
}

type MessageContext struct {
	Level     string
	File      string
	Line      int
	TimeStamp time.Time
}

// get the stack (line + file) context to return the caller to the log
func getContext(level string, skipDepth int) *MessageContext {
	_, file, line, _ := runtime.Caller(skipDepth)
	file = path.Base(file)

	return &MessageContext{
		Level:     level,
		File:      file,
		TimeStamp: time.Now(),
		Line:      line,
	}
}

func writeMessage(level string, msg string, args ...interface{}) {
	writeMessageDepth(4, level, msg, args...)
}

func writeMessageDepth(depth int, level string, msg string, args ...interface{}) {
	ctx := getContext(level, depth)

	// Arguments of the form func() interface{} are evaluated lazily, only once we know the message is emitted
	for i, arg := range args {
		if f, ok := arg.(func() interface{}); ok {
			args[i] = f()
		}
	}

	if err := currentHandler.Emit(ctx, msg, args...); err != nil {
		printLogError(err, ctx, msg, args...)
	}
}

func printLogError(err error, ctx *MessageContext, msg string, args ...interface{}) {
	errMsg := err.Error()
	for errw := errors.Unwrap(err); errw != nil; errw = errors.Unwrap(errw) {
		errMsg += ": " + errw.Error()
	}
	fmt.Fprintf(os.Stderr, "Error writing log message: %s\n", errMsg)
	fmt.Fprintf(os.Stderr, "[%s %s:%d] %s\n", ctx.Level, ctx.File, ctx.Line, formatMessage(msg, args...))
}

func formatMessage(msg string, args ...interface{}) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// Debug logs messages only shown in verbose mode
func Debug(msg string, args ...interface{}) {
	writeMessage(DEBUG, msg, args...)
}

// Info logs informational messages
func Info(msg string, args ...interface{}) {
	writeMessage(INFO, msg, args...)
}

// Notice is like info but for really important stuff
func Notice(msg string, args ...interface{}) {
	writeMessage(NOTICE, msg, args...)
}

// Warning logs conditions that are handled but likely unintended
func Warning(msg string, args ...interface{}) {
	writeMessage(WARNING, msg, args...)
}

// Error logs an error along with a stacktrace of where it was logged from
func Error(msg string, args ...interface{}) {
	writeMessage(ERROR, msg+"\n\nStacktrace: "+string(debug.Stack()), args...)
}

// Critical logs failures the program cannot recover from
func Critical(msg string, args ...interface{}) {
	writeMessage(CRITICAL, msg, args...)
}

// Close flushes and closes the current handler
func Close() {
	currentHandler.Close()
}

// LevelFromString parses a level name, case insensitive
func LevelFromString(l string) (string, error) {
	l = strings.ToUpper(strings.TrimSpace(l))
	switch l {
	case DEBUG, INFO, NOTICE, WARNING, ERROR, CRITICAL:
		return l, nil
	case "WARN":
		return WARNING, nil
	}
	return "", fmt.Errorf("Invalid level %s", l)
}
