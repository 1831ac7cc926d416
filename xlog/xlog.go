package xlog

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xunrolled/lib/infra"
)

type logLevel string

const (
	LogLevelDebug logLevel = "DEBUG"
	LogLevelInfo  logLevel = "INFO"
	LogLevelWarn  logLevel = "WARN"
	LogLevelError logLevel = "ERROR"
)

func (lvl logLevel) zapLevel() zapcore.Level {
	switch logLevel(strings.ToUpper(string(lvl))) {
	case LogLevelInfo:
		return zapcore.InfoLevel
	case LogLevelWarn:
		return zapcore.WarnLevel
	case LogLevelError:
		return zapcore.ErrorLevel
	default:
	}
	return zapcore.DebugLevel
}

func (lvl logLevel) String() string {
	return string(lvl)
}

type logEncoderType uint8

const (
	JSON logEncoderType = iota
	PlainText
	_encMax
)

const (
	coreKeyIgnored = ""
	levelEnvKey    = "XLOG_LVL"
)

// XLogger is the zap logger handed to the containers through their
// WithLogger options. The level is adjustable at runtime.
//
// ErrorStack prints the frames of an infra.ErrorStack as a JSON array
// instead of the zap stacktrace, so log aggregators can parse them.
type XLogger interface {
	Zap() *zap.Logger
	Named(component string) *zap.Logger
	IncreaseLogLevel(level zapcore.Level)
	Level() string
	Sync() error
	ErrorStack(err error, msg string, fields ...zap.Field)
}

var _ XLogger = (*xLogger)(nil)

type xLogger struct {
	logger              *zap.Logger
	dynamicLevelEnabler zap.AtomicLevel
	closer              func() error
}

func (l *xLogger) Zap() *zap.Logger {
	return l.logger
}

func (l *xLogger) Named(component string) *zap.Logger {
	return l.logger.Named(component)
}

// IncreaseLogLevel we can increase or decrease the log level concurrently.
func (l *xLogger) IncreaseLogLevel(level zapcore.Level) {
	l.dynamicLevelEnabler.SetLevel(level)
}

func (l *xLogger) Level() string {
	return l.dynamicLevelEnabler.Level().String()
}

func (l *xLogger) Sync() error {
	err := l.logger.Sync()
	if l.closer != nil {
		err = multierr.Append(err, l.closer())
	}
	return err
}

func (l *xLogger) ErrorStack(err error, msg string, fields ...zap.Field) {
	newFields := make([]zap.Field, 0, len(fields)+1)
	var es infra.ErrorStack
	if errors.As(err, &es) && es != nil {
		newFields = append(newFields, zap.Inline(es))
	} else if err != nil {
		newFields = append(newFields, zap.String("error", err.Error()))
	}
	newFields = append(newFields, fields...)
	l.logger.Error(msg, newFields...)
}

type loggerCfg struct {
	encoderType logEncoderType
	lvlEncoder  zapcore.LevelEncoder
	tsEncoder   zapcore.TimeEncoder
	level       *zapcore.Level
	writer      zapcore.WriteSyncer
}

func (cfg *loggerCfg) apply(l *xLogger) zapcore.Core {
	if cfg.level != nil {
		l.dynamicLevelEnabler = zap.NewAtomicLevelAt(*cfg.level)
	} else {
		l.dynamicLevelEnabler = zap.NewAtomicLevelAt(logLevel(os.Getenv(levelEnvKey)).zapLevel())
	}
	if cfg.lvlEncoder == nil {
		cfg.lvlEncoder = zapcore.CapitalLevelEncoder
	}
	if cfg.tsEncoder == nil {
		cfg.tsEncoder = zapcore.ISO8601TimeEncoder
	}
	if cfg.writer == nil {
		ws := &zapcore.BufferedWriteSyncer{WS: os.Stdout, Size: 512 * 1024, FlushInterval: 30 * time.Second}
		cfg.writer = ws
		l.closer = ws.Stop
	}

	encCfg := zapcore.EncoderConfig{
		MessageKey:    "msg",
		LevelKey:      "lvl",
		EncodeLevel:   cfg.lvlEncoder,
		TimeKey:       "ts",
		EncodeTime:    cfg.tsEncoder,
		CallerKey:     "callAt",
		EncodeCaller:  zapcore.ShortCallerEncoder,
		FunctionKey:   coreKeyIgnored,
		NameKey:       "component",
		EncodeName:    zapcore.FullNameEncoder,
		StacktraceKey: coreKeyIgnored,
	}
	var enc zapcore.Encoder
	switch cfg.encoderType {
	case PlainText:
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		enc = zapcore.NewJSONEncoder(encCfg)
	}
	return zapcore.NewCore(enc, cfg.writer, l.dynamicLevelEnabler)
}

type XLoggerOption func(*loggerCfg) error

// NewXLogger builds a console logger. The level falls back to the
// XLOG_LVL environment variable, then to DEBUG.
func NewXLogger(opts ...XLoggerOption) (XLogger, error) {
	cfg := &loggerCfg{}
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(cfg); err != nil {
			return nil, err
		}
	}
	xl := &xLogger{}
	core := cfg.apply(xl)
	// Disable zap logger error stack.
	xl.logger = zap.New(core, zap.AddCaller())
	return xl, nil
}

func WithXLoggerWriter(w io.Writer) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if w == nil {
			return infra.NewErrorStack("[XLogger] nil writer")
		}
		cfg.writer = zapcore.AddSync(w)
		return nil
	}
}

func WithXLoggerEncoder(logEnc logEncoderType) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if logEnc >= _encMax {
			return infra.NewErrorStack("[XLogger] unknown encoder")
		}
		cfg.encoderType = logEnc
		return nil
	}
}

func WithXLoggerLevel(lvl logLevel) XLoggerOption {
	return func(cfg *loggerCfg) error {
		_lvl := lvl.zapLevel()
		cfg.level = &_lvl
		return nil
	}
}

func WithXLoggerLevelEncoder(lvlEnc zapcore.LevelEncoder) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if lvlEnc == nil {
			lvlEnc = zapcore.CapitalColorLevelEncoder
		}
		cfg.lvlEncoder = lvlEnc
		return nil
	}
}

func WithXLoggerTimeEncoder(tsEnc zapcore.TimeEncoder) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if tsEnc == nil {
			tsEnc = zapcore.ISO8601TimeEncoder
		}
		cfg.tsEncoder = tsEnc
		return nil
	}
}
