package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
	"github.com/Temutjin2k/ride-analytics/pkg/configparser"
)

// Flags
var (
	modeFlag = flag.String("mode", "", "application mode: dashboard, report or stage")
)

// Errors
var (
	ErrModeNotProvided    = errors.New("mode flag not provided")
	ErrDatasetNotProvided = errors.New("dataset path not provided")
)

// Config contains all configuration variables of the application
type (
	Config struct {
		Mode types.ServiceMode

		Dataset   DatasetConfig
		Analytics AnalyticsConfig
		Database  DatabaseConfig
		RabbitMQ  RabbitMQConfig
		Server    ServerConfig
		Report    ReportConfig
		Log       LogConfig
	}

	DatasetConfig struct {
		Path  string `env:"DATASET_PATH"`
		Sheet string `env:"DATASET_SHEET"` // first sheet when empty
	}

	AnalyticsConfig struct {
		Engine types.Engine `env:"ANALYTICS_ENGINE" default:"memory"`
	}

	DatabaseConfig struct {
		Host     string `env:"DATABASE_HOST" default:"localhost"`
		Port     string `env:"DATABASE_PORT" default:"5432"`
		User     string `env:"DATABASE_USER" default:"analytics_user"`
		Password string `env:"DATABASE_PASSWORD" default:"analytics_pass"`
		Database string `env:"DATABASE_DATABASE" default:"analytics_db"`

		MaxConns int32 `env:"DATABASE_MAXCONNS" default:"10"`
	}

	RabbitMQConfig struct {
		Host     string `env:"RABBITMQ_HOST" default:"localhost"`
		Port     string `env:"RABBITMQ_PORT" default:"5672"`
		User     string `env:"RABBITMQ_USER" default:"guest"`
		Password string `env:"RABBITMQ_PASSWORD" default:"guest"`
		Exchange string `env:"RABBITMQ_EXCHANGE" default:"analytics"`
	}

	ServerConfig struct {
		Port            string        `env:"SERVER_PORT" default:"8080"`
		ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"5s"`
	}

	ReportConfig struct {
		Publish bool   `env:"REPORT_PUBLISH" default:"false"` // RabbitMQ instead of a JSON document
		Output  string `env:"REPORT_OUTPUT"`                  // stdout when empty
	}

	LogConfig struct {
		Level string `env:"LOG_LEVEL" default:"INFO"`
	}
)

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

func (c DatabaseConfig) GetMaxConns() int32 {
	return c.MaxConns
}

func (c RabbitMQConfig) GetDSN() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/",
		c.User,
		c.Password,
		c.Host,
		c.Port,
	)
}

func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}

	// Loading enviromental variables and parsing to config struct.
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseFlags(cfg *Config) error {
	if modeFlag == nil || *modeFlag == "" {
		return ErrModeNotProvided
	}

	cfg.Mode = types.ServiceMode(*modeFlag)

	return nil
}

// Validate checks the values every mode depends on.
func (c *Config) Validate() error {
	switch c.Mode {
	case types.DashboardMode, types.ReportMode, types.StageMode:
	default:
		return fmt.Errorf("%w: %q", types.ErrInvalidMode, c.Mode)
	}
	if !c.Analytics.Engine.Valid() {
		return fmt.Errorf("%w: %q", types.ErrInvalidEngine, c.Analytics.Engine)
	}
	if c.Dataset.Path == "" {
		return ErrDatasetNotProvided
	}
	return nil
}
