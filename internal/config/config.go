// Package config loads healthlog settings from compiled defaults, an
// optional YAML file and HEALTHLOG_* environment variables, in that order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/config"

	"github.com/saadjs/healthlog/internal/app"
)

const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

const defaults = `
storage:
  driver: sqlite
  path: ""
  prefix: ""
  redis:
    addr: localhost:6379
    password: ""
    db: 0
rollover:
  interval: 1m
  tick: 1s
  policy: previous-days
logging:
  level: warn
  format: text
user:
  id: local
`

type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Rollover RolloverConfig `yaml:"rollover"`
	Logging  LoggingConfig  `yaml:"logging"`
	User     UserConfig     `yaml:"user"`
}

type StorageConfig struct {
	Driver string      `yaml:"driver"`
	Path   string      `yaml:"path"`
	Prefix string      `yaml:"prefix"`
	Redis  RedisConfig `yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type RolloverConfig struct {
	Interval time.Duration `yaml:"interval"`
	Tick     time.Duration `yaml:"tick"`
	Policy   string        `yaml:"policy"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type UserConfig struct {
	ID string `yaml:"id"`
}

// Load reads the file at path, or $HEALTHLOG_CONFIG, or the default config
// location. A missing file is not an error unless path was given
// explicitly.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv("HEALTHLOG_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		p, err := app.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	opts := []config.YAMLOption{
		config.Source(strings.NewReader(defaults)),
	}
	switch _, err := os.Stat(path); {
	case err == nil:
		opts = append(opts, config.File(path))
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}
	opts = append(opts, config.Expand(os.LookupEnv))

	provider, err := config.NewYAML(opts...)
	if err != nil {
		return nil, fmt.Errorf("create config provider: %w", err)
	}

	var cfg Config
	if err := provider.Get(config.Root).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("populate config: %w", err)
	}
	if err := cfg.overrideFromEnv(); err != nil {
		return nil, err
	}
	if cfg.Storage.Path == "" && cfg.Storage.Driver == DriverSQLite {
		p, err := app.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.Storage.Path = p
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) overrideFromEnv() error {
	if val := os.Getenv("HEALTHLOG_STORAGE_DRIVER"); val != "" {
		c.Storage.Driver = val
	}
	if val := os.Getenv("HEALTHLOG_DB"); val != "" {
		c.Storage.Path = val
	}
	if val := os.Getenv("HEALTHLOG_STORAGE_PREFIX"); val != "" {
		c.Storage.Prefix = val
	}
	if val := os.Getenv("HEALTHLOG_REDIS_ADDR"); val != "" {
		c.Storage.Redis.Addr = val
	}
	if val := os.Getenv("HEALTHLOG_REDIS_PASSWORD"); val != "" {
		c.Storage.Redis.Password = val
	}
	if val := os.Getenv("HEALTHLOG_REDIS_DB"); val != "" {
		db, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("HEALTHLOG_REDIS_DB: %w", err)
		}
		c.Storage.Redis.DB = db
	}
	if val := os.Getenv("HEALTHLOG_ROLLOVER_POLICY"); val != "" {
		c.Rollover.Policy = val
	}
	if val := os.Getenv("HEALTHLOG_LOG_LEVEL"); val != "" {
		c.Logging.Level = val
	}
	if val := os.Getenv("HEALTHLOG_LOG_FORMAT"); val != "" {
		c.Logging.Format = val
	}
	if val := os.Getenv("HEALTHLOG_USER"); val != "" {
		c.User.ID = val
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the sqlite driver")
		}
	case DriverRedis:
		if c.Storage.Redis.Addr == "" {
			return fmt.Errorf("storage.redis.addr is required for the redis driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q (expected %s or %s)", c.Storage.Driver, DriverSQLite, DriverRedis)
	}
	if c.Rollover.Interval <= 0 {
		return fmt.Errorf("rollover.interval must be > 0")
	}
	if c.Rollover.Tick < 0 {
		return fmt.Errorf("rollover.tick must be >= 0")
	}
	if strings.TrimSpace(c.User.ID) == "" {
		return fmt.Errorf("user.id is required")
	}
	return nil
}
