// Package config loads the ristorante configuration from a YAML file with
// RISTORANTE_* environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kotaroooo0/ristorante"
)

type Config struct {
	Storage StorageConfig           `yaml:"storage"`
	Crawler CrawlerConfig           `yaml:"crawler"`
	Index   IndexConfig             `yaml:"index"`
	Search  SearchConfig            `yaml:"search"`
	Scorer  ristorante.ScoreWeights `yaml:"scorer"`
	Server  ServerConfig            `yaml:"server"`
	Logging LoggingConfig           `yaml:"logging"`
}

// StorageConfig selects where snapshots are persisted. Driver is "mysql" or "gob".
type StorageConfig struct {
	Driver  string      `yaml:"driver"`
	MySQL   MySQLConfig `yaml:"mysql"`
	GobPath string      `yaml:"gobPath"`
}

type MySQLConfig struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Addr     string `yaml:"addr"`
	Port     string `yaml:"port"`
	Database string `yaml:"database"`
}

func (c MySQLConfig) DBConfig() *ristorante.DBConfig {
	return ristorante.NewDBConfig(c.User, c.Password, c.Addr, c.Port, c.Database)
}

type CrawlerConfig struct {
	PagesPath         string        `yaml:"pagesPath"`
	Concurrency       int           `yaml:"concurrency"`
	RequestsPerSecond float64       `yaml:"requestsPerSecond"`
	Timeout           time.Duration `yaml:"timeout"`
	UserAgent         string        `yaml:"userAgent"`
}

type IndexConfig struct {
	// Tf is "raw" or "log".
	Tf string `yaml:"tf"`
}

func (c IndexConfig) TfVariant() (ristorante.TfVariant, error) {
	switch c.Tf {
	case "", "raw":
		return ristorante.TfRaw, nil
	case "log":
		return ristorante.TfLog, nil
	}
	return ristorante.TfRaw, fmt.Errorf("unknown tf variant %q", c.Tf)
}

type SearchConfig struct {
	DefaultLimit int `yaml:"defaultLimit"`
	MaxLimit     int `yaml:"maxLimit"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads path (optional) over the defaults and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver: "gob",
			MySQL: MySQLConfig{
				User:     "root",
				Password: "password",
				Addr:     "127.0.0.1",
				Port:     "3306",
				Database: "ristorante",
			},
			GobPath: "data/snapshot.gob",
		},
		Crawler: CrawlerConfig{
			PagesPath:         "data/pages.db",
			Concurrency:       4,
			RequestsPerSecond: 2,
			Timeout:           30 * time.Second,
			UserAgent:         "ristorante-crawler/1.0",
		},
		Index: IndexConfig{Tf: "raw"},
		Search: SearchConfig{
			DefaultLimit: ristorante.DefaultLimit,
			MaxLimit:     100,
		},
		Scorer: ristorante.DefaultScoreWeights(),
		Server: ServerConfig{Port: 8080},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case "mysql", "gob":
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if _, err := c.Index.TfVariant(); err != nil {
		return err
	}
	if c.Search.DefaultLimit < 0 || c.Search.MaxLimit < c.Search.DefaultLimit {
		return fmt.Errorf("search limits out of range: default %d, max %d", c.Search.DefaultLimit, c.Search.MaxLimit)
	}
	if c.Crawler.Concurrency < 1 {
		return fmt.Errorf("crawler concurrency must be positive: %d", c.Crawler.Concurrency)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RISTORANTE_STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("RISTORANTE_STORAGE_GOB_PATH"); v != "" {
		cfg.Storage.GobPath = v
	}
	if v := os.Getenv("RISTORANTE_MYSQL_USER"); v != "" {
		cfg.Storage.MySQL.User = v
	}
	if v := os.Getenv("RISTORANTE_MYSQL_PASSWORD"); v != "" {
		cfg.Storage.MySQL.Password = v
	}
	if v := os.Getenv("RISTORANTE_MYSQL_ADDR"); v != "" {
		cfg.Storage.MySQL.Addr = v
	}
	if v := os.Getenv("RISTORANTE_MYSQL_PORT"); v != "" {
		cfg.Storage.MySQL.Port = v
	}
	if v := os.Getenv("RISTORANTE_MYSQL_DATABASE"); v != "" {
		cfg.Storage.MySQL.Database = v
	}
	if v := os.Getenv("RISTORANTE_CRAWLER_PAGES_PATH"); v != "" {
		cfg.Crawler.PagesPath = v
	}
	if v := os.Getenv("RISTORANTE_CRAWLER_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Crawler.Concurrency = n
		}
	}
	if v := os.Getenv("RISTORANTE_CRAWLER_RPS"); v != "" {
		if rps, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Crawler.RequestsPerSecond = rps
		}
	}
	if v := os.Getenv("RISTORANTE_INDEX_TF"); v != "" {
		cfg.Index.Tf = v
	}
	if v := os.Getenv("RISTORANTE_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("RISTORANTE_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("RISTORANTE_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
