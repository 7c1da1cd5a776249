package logging

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// tailSize is the amount of recent log output kept in memory regardless of verbosity
const tailSize = 64 * 1024

type zapHandler struct {
	mu     sync.Mutex
	out    io.Writer
	level  zap.AtomicLevel
	tail   *ringBuffer
	logger *zap.Logger
}

// NewHandler returns a zap backed handler writing to w. Only warnings and above are written until verbose mode is
// enabled; every message is retained in an in-memory tail that can be read back with Tail.
func NewHandler(w io.Writer) LoggingHandler {
	h := &zapHandler{
		out:   w,
		level: zap.NewAtomicLevelAt(zapcore.WarnLevel),
		tail:  newRingBuffer(tailSize),
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	encCfg.EncodeCaller = func(c zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(fmt.Sprintf("%s:%d", c.File, c.Line))
	}
	encoder := zapcore.NewConsoleEncoder(encCfg)

	h.logger = zap.New(zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.AddSync(&lockedWriter{mu: &h.mu, w: w}), h.level),
		zapcore.NewCore(encoder, zapcore.AddSync(&lockedWriter{mu: &h.mu, w: h.tail}), zapcore.DebugLevel),
	))
	return h
}

func (h *zapHandler) SetVerbose(v bool) {
	if v {
		h.level.SetLevel(zapcore.DebugLevel)
		return
	}
	h.level.SetLevel(zapcore.WarnLevel)
}

func (h *zapHandler) Verbose() bool {
	return h.level.Enabled(zapcore.DebugLevel)
}

func (h *zapHandler) Output() io.Writer {
	return h.out
}

func (h *zapHandler) Emit(ctx *MessageContext, message string, args ...interface{}) error {
	lvl := zapLevel(ctx.Level)
	ce := h.logger.Check(lvl, formatMessage(message, args...))
	if ce == nil {
		return nil
	}
	ce.Entry.Time = ctx.TimeStamp
	ce.Entry.Caller = zapcore.EntryCaller{Defined: true, File: ctx.File, Line: ctx.Line}

	var fields []zap.Field
	switch ctx.Level {
	case NOTICE:
		fields = append(fields, zap.Bool("notice", true))
	case CRITICAL:
		fields = append(fields, zap.Bool("critical", true))
	}
	ce.Write(fields...)
	return nil
}

// Printf satisfies the Logger interfaces of third party libraries, funneling their output to debug level
func (h *zapHandler) Printf(msg string, args ...interface{}) {
	h.Emit(getContext(DEBUG, 2), "Third party log message: "+msg, args...)
}

func (h *zapHandler) Close() {
	_ = h.logger.Sync()
}

// Tail returns the most recently logged output of the current handler, including messages below the verbosity
// threshold. It returns an empty string for handlers that do not keep a tail.
func Tail() string {
	h, ok := currentHandler.(*zapHandler)
	if !ok {
		return ""
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.tail.String()
}

func zapLevel(level string) zapcore.Level {
	switch level {
	case DEBUG:
		return zapcore.DebugLevel
	case INFO, NOTICE:
		return zapcore.InfoLevel
	case WARNING:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
