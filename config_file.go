package clubadmin

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML shape of a config file. It mirrors [Config] but
// keeps zero values distinguishable so unset fields inherit defaults.
type fileConfig struct {
	API struct {
		BaseURL   string        `yaml:"base_url"`
		Timeout   time.Duration `yaml:"timeout"`
		UserAgent string        `yaml:"user_agent"`
	} `yaml:"api"`
	Session struct {
		Backend     string        `yaml:"backend"`
		Dir         string        `yaml:"dir"`
		TokenKey    string        `yaml:"token_key"`
		IdentityKey string        `yaml:"identity_key"`
		RedisPrefix string        `yaml:"redis_prefix"`
		RedisTTL    time.Duration `yaml:"redis_ttl"`
	} `yaml:"session"`
	Token struct {
		PreCheckExpiry *bool `yaml:"pre_check_expiry"`
	} `yaml:"token"`
	Audit struct {
		Enabled    bool  `yaml:"enabled"`
		BufferSize int   `yaml:"buffer_size"`
		DropIfFull *bool `yaml:"drop_if_full"`
	} `yaml:"audit"`
	Metrics struct {
		Enabled           bool `yaml:"enabled"`
		LatencyHistograms bool `yaml:"latency_histograms"`
	} `yaml:"metrics"`
	Debtors struct {
		WindowMonths int `yaml:"window_months"`
	} `yaml:"debtors"`
}

// LoadConfig reads a YAML config file and overlays it on [DefaultConfig].
// The result is validated before it is returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if fc.API.BaseURL != "" {
		cfg.API.BaseURL = fc.API.BaseURL
	}
	if fc.API.Timeout != 0 {
		cfg.API.Timeout = fc.API.Timeout
	}
	if fc.API.UserAgent != "" {
		cfg.API.UserAgent = fc.API.UserAgent
	}

	if fc.Session.Backend != "" {
		cfg.Session.Backend = SessionBackend(fc.Session.Backend)
	}
	if fc.Session.Dir != "" {
		cfg.Session.Dir = fc.Session.Dir
	}
	if fc.Session.TokenKey != "" {
		cfg.Session.TokenKey = fc.Session.TokenKey
	}
	if fc.Session.IdentityKey != "" {
		cfg.Session.IdentityKey = fc.Session.IdentityKey
	}
	if fc.Session.RedisPrefix != "" {
		cfg.Session.RedisPrefix = fc.Session.RedisPrefix
	}
	if fc.Session.RedisTTL != 0 {
		cfg.Session.RedisTTL = fc.Session.RedisTTL
	}

	if fc.Token.PreCheckExpiry != nil {
		cfg.Token.PreCheckExpiry = *fc.Token.PreCheckExpiry
	}

	cfg.Audit.Enabled = fc.Audit.Enabled
	if fc.Audit.BufferSize != 0 {
		cfg.Audit.BufferSize = fc.Audit.BufferSize
	}
	if fc.Audit.DropIfFull != nil {
		cfg.Audit.DropIfFull = *fc.Audit.DropIfFull
	}

	cfg.Metrics.Enabled = fc.Metrics.Enabled
	cfg.Metrics.EnableLatencyHistograms = fc.Metrics.LatencyHistograms

	if fc.Debtors.WindowMonths != 0 {
		cfg.Debtors.WindowMonths = fc.Debtors.WindowMonths
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
