package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type CallerDisplayMode int

const (
	// CallerShort shows only filename:line (country.go:42)
	CallerShort CallerDisplayMode = iota
	// CallerMedium shows package/filename:line (handlers/country_handlers.go:42)
	CallerMedium
	// CallerFull shows the trimmed path
	CallerFull
)

const (
	defaultLogPath = "./logs/crmkit.log"
	callerWidth    = 32
)

// Options controls logger construction
type Options struct {
	Development bool
	LogPath     string
	Level       string
	// Rotation settings for the production file sink
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

var (
	// Logger is a no-op until InitLogger runs so packages can log from tests
	Logger            = zap.NewNop()
	atomicLevel       = zap.NewAtomicLevelAt(zap.InfoLevel)
	callerDisplayMode = CallerShort
)

// InitLogger builds the global logger and replaces zap's globals
func InitLogger(opts Options) error {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return err
	}
	atomicLevel.SetLevel(level)

	var l *zap.Logger
	if opts.Development {
		l, err = newDevelopmentLogger()
	} else {
		l, err = NewProductionLogger(opts)
	}
	if err != nil {
		return err
	}

	Logger = l
	zap.ReplaceGlobals(l)
	return nil
}

// ParseLevel maps a level name to a zap level; empty means info
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		return zapcore.InfoLevel, nil
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q: %w", name, err)
	}
	return level, nil
}

func newDevelopmentLogger() (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig = encoderConfig()
	config.EncoderConfig.TimeKey = "T"
	config.Level = atomicLevel

	return config.Build(
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
}

// NewProductionLogger writes JSON to a rotated file and console lines to stdout
func NewProductionLogger(opts Options) (*zap.Logger, error) {
	logPath := opts.LogPath
	if logPath == "" {
		logPath = defaultLogPath
	}

	if err := createLogDir(logPath); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    valueOr(opts.MaxSizeMB, 100),
		MaxBackups: valueOr(opts.MaxBackups, 5),
		MaxAge:     valueOr(opts.MaxAgeDays, 30),
		Compress:   true,
	}

	cfg := encoderConfig()
	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.AddSync(rotator), atomicLevel),
		zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(os.Stdout), atomicLevel),
	)

	return zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	), nil
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.MessageKey = "msg"
	cfg.LevelKey = "level"
	cfg.CallerKey = "caller"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeDuration = zapcore.MillisDurationEncoder
	cfg.EncodeLevel = func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(fmt.Sprintf("%-5s", level.CapitalString()))
	}
	cfg.EncodeCaller = func(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(formatCallerPath(caller))
	}
	return cfg
}

func valueOr(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

// With creates a child logger with additional fields
func With(fields ...zap.Field) *zap.Logger {
	return Logger.With(fields...)
}

// Info logs a message at InfoLevel
func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

// Error logs a message at ErrorLevel
func Error(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}

// Warn logs a message at WarnLevel
func Warn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

// Debug logs a message at DebugLevel
func Debug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}

// Sync flushes any buffered log entries
func Sync() error {
	return Logger.Sync()
}

// SetLogLevel changes the level of the running logger
func SetLogLevel(name string) error {
	level, err := ParseLevel(name)
	if err != nil {
		return err
	}
	atomicLevel.SetLevel(level)
	return nil
}

// GetLogLevel returns the current level name
func GetLogLevel() string {
	return atomicLevel.Level().String()
}

func createLogDir(logPath string) error {
	dir := filepath.Dir(logPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// SetCallerDisplayMode sets the caller path display mode
func SetCallerDisplayMode(mode CallerDisplayMode) {
	callerDisplayMode = mode
}

// formatCallerPath renders the caller according to the display mode,
// padded to a fixed width so messages line up on the console.
func formatCallerPath(caller zapcore.EntryCaller) string {
	fullPath := caller.TrimmedPath()

	var result string
	switch callerDisplayMode {
	case CallerShort:
		result = fullPath[strings.LastIndex(fullPath, "/")+1:]
	case CallerMedium:
		shortened := strings.TrimPrefix(fullPath, "pkg/")
		shortened = strings.TrimPrefix(shortened, "cmd/")
		shortened = strings.TrimPrefix(shortened, "internal/")
		parts := strings.Split(shortened, "/")
		if len(parts) > 2 {
			parts = parts[len(parts)-2:]
		}
		result = strings.Join(parts, "/")
	default:
		result = fullPath
	}

	if len(result) > callerWidth {
		result = "..." + result[len(result)-(callerWidth-3):]
	}
	return fmt.Sprintf("%-*s", callerWidth, result)
}
