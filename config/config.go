package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/VladPetriv/fathom_migrator/pkg/errs"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents an app config.
type Config struct {
	Supabase   Supabase   `yaml:"supabase"`
	PostgreSQL PostgreSQL `yaml:"postgresql"`
	Migration  Migration  `yaml:"migration"`
	Logger     Logger     `yaml:"logger"`
}

// Supabase represents the hosted project the migration targets.
type Supabase struct {
	URL           string `env:"NEXT_PUBLIC_SUPABASE_URL" yaml:"url"`
	HostingDomain string `env:"SUPABASE_HOSTING_DOMAIN" yaml:"hosting_domain" env-default:"supabase.co"`
}

// PostgreSQL represents a connection configuration for the project database.
type PostgreSQL struct {
	Host             string        `env:"SUPABASE_DB_HOST" yaml:"host" env-default:"aws-0-eu-central-1.pooler.supabase.com"`
	Port             string        `env:"SUPABASE_DB_PORT" yaml:"port" env-default:"6543"`
	User             string        `env:"SUPABASE_DB_USER" yaml:"user" env-default:"postgres"`
	Password         string        `env:"SUPABASE_DB_PASSWORD" yaml:"password"`
	Database         string        `env:"SUPABASE_DB_NAME" yaml:"database" env-default:"postgres"`
	SSLMode          string        `env:"SUPABASE_DB_SSLMODE" yaml:"sslmode" env-default:"require"`
	ConnectTimeout   time.Duration `env:"SUPABASE_DB_CONNECT_TIMEOUT" yaml:"connect_timeout" env-default:"10s"`
	StatementTimeout time.Duration `env:"SUPABASE_DB_STATEMENT_TIMEOUT" yaml:"statement_timeout" env-default:"30s"`
}

// Migration represents settings of a single migration run.
type Migration struct {
	Timeout time.Duration `env:"MIGRATION_TIMEOUT" yaml:"timeout" env-default:"1m"`
}

// Logger represents a logger configuration.
type Logger struct {
	LogLevel        string `env:"FB_LOGGER_LOG_LEVEL" yaml:"log_level" env-default:"info"`
	LogFilename     string `env:"FB_LOGGER_LOG_FILENAME" yaml:"log_filename" env-default:""`
	PrettyLogOutput bool   `env:"FB_LOGGER_PRETTY_LOG_OUTPUT" yaml:"pretty_log_output" env-default:"false"`
}

// PathEnv points to an optional config file, environment still overrides it.
const PathEnv = "CONFIG_PATH"

// Load reads the config from the environment. When path is empty CONFIG_PATH is
// consulted, and when a file is given its values are read first.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(PathEnv)
	}

	var cfg Config

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrConfiguration, fmt.Errorf("read config: %w", err))
	}

	return &cfg, nil
}

// ErrMissingValue is returned when a required setting is absent.
var ErrMissingValue = errors.New("required value is not set")

// Validate checks the settings needed before any connection is attempted.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Supabase.URL) == "" {
		return errs.Wrap(errs.ErrConfiguration, fmt.Errorf("NEXT_PUBLIC_SUPABASE_URL: %w", ErrMissingValue))
	}
	if c.PostgreSQL.Password == "" {
		return errs.Wrap(errs.ErrConfiguration, fmt.Errorf("SUPABASE_DB_PASSWORD: %w", ErrMissingValue))
	}
	if c.Supabase.HostingDomain == "" {
		return errs.Wrap(errs.ErrConfiguration, fmt.Errorf("SUPABASE_HOSTING_DOMAIN: %w", ErrMissingValue))
	}

	return nil
}
