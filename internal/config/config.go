package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultSpreadsheetName = "weight_measurements_kg"
	DefaultCredentialsPath = "./credentials.json"
	DefaultEntriesLimit    = 30
	DefaultSMTPHost        = "smtp.gmail.com"
	DefaultSMTPPort        = 465
)

type Config struct {
	Environment string
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// spreadsheet
	SpreadsheetName string `toml:"spreadsheet_name"`
	SpreadsheetID   string `toml:"spreadsheet_id"`
	WorksheetName   string `toml:"worksheet_name"`
	CredentialsPath string `toml:"credentials_path"`
	EntriesLimit    int    `toml:"entries_limit"`
	// mail
	SMTPHost string `toml:"smtp_host"`
	SMTPPort int    `toml:"smtp_port"`
	// metrics, empty means "do not push"
	PushgatewayURL string `toml:"pushgateway_url"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no [%s] section in config file [%s]", env, path)
	}

	cfg.Environment = env
	cfg.setDefaults()

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.SpreadsheetName == "" && c.SpreadsheetID == "" {
		c.SpreadsheetName = DefaultSpreadsheetName
	}
	if c.CredentialsPath == "" {
		c.CredentialsPath = DefaultCredentialsPath
	}
	if c.EntriesLimit <= 0 {
		c.EntriesLimit = DefaultEntriesLimit
	}
	if c.SMTPHost == "" {
		c.SMTPHost = DefaultSMTPHost
	}
	if c.SMTPPort <= 0 {
		c.SMTPPort = DefaultSMTPPort
	}
}
