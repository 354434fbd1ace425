package zapbackend

import (
	"os"
	"path/filepath"
	"sync"

	"git.famapp.in/fampay-inc/logbind/internal/config"
	"git.famapp.in/fampay-inc/logbind/pkg/facade"
	"git.famapp.in/fampay-inc/logbind/pkg/metrics"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// RootLoggerName is used when a caller asks for a logger without a name.
const RootLoggerName = "ROOT"

// LoggerFactory hands out one *Logger per name over a shared zap root.
type LoggerFactory struct {
	root    *zap.Logger
	loggers sync.Map
}

var _ facade.LoggerFactory = (*LoggerFactory)(nil)

// NewLoggerFactory builds the zap root described by cfg.
func NewLoggerFactory(cfg *config.Config) (*LoggerFactory, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	core, err := newCore(cfg)
	if err != nil {
		return nil, err
	}

	opts := []zap.Option{
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Fields(
			zap.String("name", "fam.service."+cfg.Name),
			zap.String("src_service", cfg.SrcSvc),
		),
	}
	if cfg.Dgn == config.DgnLocal {
		opts = append(opts, zap.Development())
	}
	return NewLoggerFactoryWithCore(core, opts...), nil
}

// NewLoggerFactoryWithCore wraps an existing core, mostly for tests.
func NewLoggerFactoryWithCore(core zapcore.Core, opts ...zap.Option) *LoggerFactory {
	metrics.Register()
	return &LoggerFactory{root: zap.New(core, opts...)}
}

// Logger returns the handle for name, creating it on first use.
func (f *LoggerFactory) Logger(name string) facade.Logger {
	if name == "" {
		name = RootLoggerName
	}
	if l, ok := f.loggers.Load(name); ok {
		return l.(*Logger)
	}
	l, loaded := f.loggers.LoadOrStore(name, &Logger{Logger: f.root.Named(name)})
	if !loaded {
		metrics.LoggersCreated.WithLabelValues("zap").Inc()
	}
	return l.(*Logger)
}

// Sync flushes buffered entries of the shared core.
func (f *LoggerFactory) Sync() error {
	return f.root.Sync()
}

func newCore(cfg *config.Config) (zapcore.Core, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", cfg.LogLevel)
	}

	sink, err := newSink(cfg)
	if err != nil {
		return nil, err
	}

	var encCfg zapcore.EncoderConfig
	if cfg.Dgn == config.DgnLocal {
		encCfg = zap.NewDevelopmentEncoderConfig()
	} else {
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.EncodeLevel = IntegerLevelEncoder
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encCfg.TimeKey = "time"
	}

	var enc zapcore.Encoder
	switch cfg.LogEncoding {
	case config.EncodingConsole:
		enc = zapcore.NewConsoleEncoder(encCfg)
	case config.EncodingJSON, "":
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, errors.Errorf("unknown log encoding %q", cfg.LogEncoding)
	}

	return zapcore.NewCore(enc, sink, zap.NewAtomicLevelAt(level)), nil
}

func newSink(cfg *config.Config) (zapcore.WriteSyncer, error) {
	switch cfg.LogOutput {
	case config.OutputStdout, "":
		return zapcore.Lock(os.Stdout), nil
	case config.OutputStderr:
		return zapcore.Lock(os.Stderr), nil
	case config.OutputFile:
		if cfg.LogFilePath == "" {
			return nil, errors.New("file output requires a log file path")
		}
		if dir := filepath.Dir(cfg.LogFilePath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, errors.Wrapf(err, "failed to create log directory %q", dir)
			}
		}
		return zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.LogFilePath,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAgeDays,
			Compress:   cfg.LogCompress,
		}), nil
	default:
		return nil, errors.Errorf("unknown log output %q", cfg.LogOutput)
	}
}
