package config

import (
	"sync"

	"git.famapp.in/fampay-inc/logbind/pkg/logger"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
	OutputFile   = "file"

	EncodingJSON    = "json"
	EncodingConsole = "console"

	// DgnLocal switches the backend to zap's development preset.
	DgnLocal = "local"
)

type Config struct {
	Name   string `env:"APP_NAME" envDefault:"logbind"`
	SrcSvc string `env:"SRC_SERVICE_NAME" envDefault:"westeros"`
	Dgn    string `env:"DGN" envDefault:""`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogEncoding string `env:"LOG_ENCODING" envDefault:"json"`
	LogOutput   string `env:"LOG_OUTPUT" envDefault:"stdout"`

	LogFilePath   string `env:"LOG_FILE_PATH" envDefault:"/var/log/logbind.log"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"100"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"7"`
	LogCompress   bool   `env:"LOG_COMPRESS" envDefault:"true"`

	MetricsPort int `env:"METRICS_PORT" envDefault:"9102"`
}

var (
	appConfig *Config
	mu        sync.Mutex

	// reporter writes to stderr so it never mixes with a stdout log sink.
	reporter = logger.New(logger.Config{Level: "info", Component: "logbind.config"})
)

// Load parses the environment, optionally seeded from a .env file, into a new Config.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		reporter.Debug("unable to load .env file, continuing without it", "error", err)
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config from environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.LogOutput {
	case OutputStdout, OutputStderr:
	case OutputFile:
		if c.LogFilePath == "" {
			return errors.New("LOG_FILE_PATH is required when LOG_OUTPUT=file")
		}
	default:
		return errors.Errorf("unknown LOG_OUTPUT %q", c.LogOutput)
	}
	switch c.LogEncoding {
	case EncodingJSON, EncodingConsole:
	default:
		return errors.Errorf("unknown LOG_ENCODING %q", c.LogEncoding)
	}
	return nil
}

// Shared returns the process config, loading it on first use. A failed load is
// not cached, so a later call retries.
func Shared() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()
	if appConfig != nil {
		return appConfig, nil
	}
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	appConfig = cfg
	return appConfig, nil
}

// GetConfig is Shared for callers that cannot continue without a config.
func GetConfig() *Config {
	cfg, err := Shared()
	if err != nil {
		panic(err)
	}
	return cfg
}
