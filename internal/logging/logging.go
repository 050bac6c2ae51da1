// Package logging builds the zap logger shared by every imgbuild component.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Name is the root logger name.
const Name = "imgbuild"

const timeLayout = "2006-01-02 15:04:05"

// New returns a console logger writing to stderr at the given level.
func New(level zap.AtomicLevel) *zap.Logger {
	return NewWithWriter(zapcore.Lock(os.Stderr), level)
}

// NewWithWriter is New with a custom sink.
func NewWithWriter(w io.Writer, level zap.AtomicLevel) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	})
	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return zap.New(core).Named(Name)
}

// Level returns the level for the verbose flag.
func Level(verbose bool) zapcore.Level {
	if verbose {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}
