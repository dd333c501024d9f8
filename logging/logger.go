// Package logging builds the zap logger used by the demo and renderer.
//
// Logging is off unless debug is requested. When enabled, entries go to a
// file, never to stdout or stderr, since those belong to the terminal.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DefaultDir is the log directory relative to the working directory
	DefaultDir = "logs"
	// DefaultFile is the active log file name
	DefaultFile = "windemo.log"
	// MaxSize is the size at which the active log is rotated aside on open
	MaxSize = 10 * 1024 * 1024
)

// Config defines logger configuration
type Config struct {
	Debug bool
	Dir   string
	File  string
	Level string // "debug", "info", "warn", "error"
}

// DefaultConfig returns a disabled logger configuration
func DefaultConfig() Config {
	return Config{
		Dir:   DefaultDir,
		File:  DefaultFile,
		Level: "debug",
	}
}

// Logger wraps zap.Logger with the file it writes to
type Logger struct {
	*zap.Logger
	file *os.File
}

// New creates a logger. With Debug off it returns a no-op logger and touches
// nothing on disk.
func New(cfg Config) (*Logger, error) {
	if !cfg.Debug {
		return &Logger{Logger: zap.NewNop()}, nil
	}

	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	if cfg.Dir == "" {
		cfg.Dir = DefaultDir
	}
	if cfg.File == "" {
		cfg.File = DefaultFile
	}
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("logging: create dir: %w", err)
	}

	path := filepath.Join(cfg.Dir, cfg.File)
	if err := rotate(path); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("logging: open %s: %w", path, err)
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig()),
		zapcore.AddSync(f),
		zap.NewAtomicLevelAt(level),
	)
	return &Logger{Logger: zap.New(core), file: f}, nil
}

// Close flushes buffered entries and closes the log file
func (l *Logger) Close() error {
	_ = l.Sync()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Path returns the active log file, empty for a no-op logger
func (l *Logger) Path() string {
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}

// rotate renames an oversized log to a timestamped sibling
func rotate(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= MaxSize {
		return nil
	}
	ext := filepath.Ext(path)
	base := path[:len(path)-len(ext)]
	rotated := fmt.Sprintf("%s.%s%s", base, time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("logging: rotate: %w", err)
	}
	return nil
}

func parseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.DebugLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("logging: %w", err)
	}
	return l, nil
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		CallerKey:      zapcore.OmitKey,
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "M",
		StacktraceKey:  "S",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}
