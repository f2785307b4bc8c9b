package log

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger interface with context-aware log levels
type Logger interface {
	Debugf(message string, args ...interface{})
	Infof(message string, args ...interface{})
	Warnf(message string, args ...interface{})
	Errorf(message string, args ...interface{})
	Fatalf(message string, args ...interface{})
	Sync() error
}

// ZapLogger is a zap-based implementation of the Logger interface
type ZapLogger struct {
	logger *zap.SugaredLogger
}

// l stays nil until a host initializes it; the package-level helpers are no-ops until then
var l Logger = nil

func InitLogger(logDir string) {
	l = NewDefaultLogger(logDir)
}

// SetLogger allows overriding the global logger instance
func SetLogger(customLogger Logger) {
	l = customLogger
}

// NewDefaultLogger creates the server logger: JSON lines to
// <logDir>/app.log and stdout, errors to <logDir>/app-error.log and stderr.
func NewDefaultLogger(logDir string) *ZapLogger {

	err := os.MkdirAll(logDir, os.ModePerm)
	if err != nil {
		panic(fmt.Sprintf("couldn't create log directory:[%s], err: %v", logDir, err))
	}

	config := zap.NewProductionConfig()
	config.OutputPaths = []string{
		logDir + "/app.log",
		"stdout",
	}
	config.ErrorOutputPaths = []string{
		logDir + "/app-error.log",
		"stderr",
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}

	return &ZapLogger{logger: logger.Sugar()}
}

// NewConsoleLogger creates a human readable logger on stderr, used by the CLI.
// Debug messages are only emitted when verbose is set.
func NewConsoleLogger(verbose bool) *ZapLogger {
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if !verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}

	return &ZapLogger{logger: logger.Sugar()}
}

// NewZapLogger wraps an already built zap logger, e.g. zaptest or zap.NewNop in tests
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger.Sugar()}
}

func (l *ZapLogger) Infof(message string, args ...interface{}) {
	l.logger.Infof(message, args...)
}

func (l *ZapLogger) Warnf(message string, args ...interface{}) {
	l.logger.Warnf(message, args...)
}

func (l *ZapLogger) Errorf(message string, args ...interface{}) {
	l.logger.Errorf(message, args...)
}

func (l *ZapLogger) Debugf(message string, args ...interface{}) {
	l.logger.Debugf(message, args...)
}

func (l *ZapLogger) Fatalf(message string, args ...interface{}) {
	l.logger.Fatalf(message, args...)
}

func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}

func Debugf(message string, args ...interface{}) {
	if l != nil {
		l.Debugf(message, args...)
	}
}

func Infof(message string, args ...interface{}) {
	if l != nil {
		l.Infof(message, args...)
	}
}

func Warnf(message string, args ...interface{}) {
	if l != nil {
		l.Warnf(message, args...)
	}
}

func Errorf(message string, args ...interface{}) {
	if l != nil {
		l.Errorf(message, args...)
	}
}

func Fatalf(message string, args ...interface{}) {
	if l != nil {
		l.Fatalf(message, args...)
	}
}

// Sync flushes buffered entries of the global logger
func Sync() {
	if l != nil {
		_ = l.Sync()
	}
}
