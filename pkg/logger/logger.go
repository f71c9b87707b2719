package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger provides functionality for logging.
type Logger struct {
	*zerolog.Logger
}

// LoggerOptions represents options for logger.
type LoggerOptions struct {
	LogLevel        string
	LogFile         string
	PrettyLogOutput bool
	// Out is the console destination, stderr when nil.
	Out io.Writer
}

// New returns a new instance of logger.
func New(opts LoggerOptions) (*Logger, error) {
	zeroLogger, err := build(opts)
	if err != nil {
		return nil, err
	}

	return &Logger{&zeroLogger}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	nop := zerolog.Nop()
	return &Logger{&nop}
}

func build(opts LoggerOptions) (zerolog.Logger, error) {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	writers := []io.Writer{out}

	if opts.PrettyLogOutput {
		writers[0] = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Stamp}
	}

	if opts.LogFile != "" {
		writers = append(writers, newFileWriter(opts.LogFile))
	}

	level := zerolog.InfoLevel
	if opts.LogLevel != "" {
		parsed, err := zerolog.ParseLevel(opts.LogLevel)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("parse log level %q: %w", opts.LogLevel, err)
		}

		level = parsed
	}

	return zerolog.New(io.MultiWriter(writers...)).
		Level(level).
		With().Caller().Timestamp().
		Logger(), nil
}

func newFileWriter(filename string) io.Writer {
	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    10,
		MaxBackups: 3,
	}
}
