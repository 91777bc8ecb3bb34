package clubadmin

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v", cfg.API.Timeout)
	}
	if cfg.Session.Backend != BackendMemory {
		t.Errorf("Backend = %q", cfg.Session.Backend)
	}
	if cfg.Session.TokenKey != "easyvoley_token" || cfg.Session.IdentityKey != "easyvoley_user" {
		t.Errorf("storage keys = %q, %q", cfg.Session.TokenKey, cfg.Session.IdentityKey)
	}
	if !cfg.Token.PreCheckExpiry {
		t.Error("PreCheckExpiry should default on")
	}
	if cfg.Debtors.WindowMonths != 12 {
		t.Errorf("WindowMonths = %d", cfg.Debtors.WindowMonths)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.API.BaseURL = "https://api.club.test"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing base url", func(c *Config) { c.API.BaseURL = "" }, true},
		{"relative base url", func(c *Config) { c.API.BaseURL = "/api" }, true},
		{"negative timeout", func(c *Config) { c.API.Timeout = -time.Second }, true},
		{"empty backend normalizes to memory", func(c *Config) { c.Session.Backend = "" }, false},
		{"unknown backend", func(c *Config) { c.Session.Backend = "etcd" }, true},
		{"file backend without dir", func(c *Config) { c.Session.Backend = BackendFile }, true},
		{"file backend with dir", func(c *Config) {
			c.Session.Backend = BackendFile
			c.Session.Dir = t.TempDir()
		}, false},
		{"window too small", func(c *Config) { c.Debtors.WindowMonths = 0 }, true},
		{"window too large", func(c *Config) { c.Debtors.WindowMonths = 121 }, true},
		{"audit enabled zero buffer", func(c *Config) {
			c.Audit.Enabled = true
			c.Audit.BufferSize = 0
		}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateNormalizesEmptyBackend(t *testing.T) {
	cfg := Config{}
	cfg.API.BaseURL = "https://api.club.test"
	cfg.Debtors.WindowMonths = 12

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Session.Backend != BackendMemory {
		t.Errorf("Backend = %q, want %q", cfg.Session.Backend, BackendMemory)
	}
}

func TestBuildWithZeroSessionSection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.API.BaseURL = "https://api.club.test"
	cfg.Session = SessionConfig{}

	client, err := New().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer client.Close()
}

func TestBuilderSingleUse(t *testing.T) {
	b := New().WithBaseURL("https://api.club.test")
	if _, err := b.Build(); err != nil {
		t.Fatalf("first Build: %v", err)
	}
	if _, err := b.Build(); err == nil {
		t.Error("second Build should fail")
	}
}

func TestBuilderRedisBackendRequiresClient(t *testing.T) {
	cfg := DefaultConfig()
	cfg.API.BaseURL = "https://api.club.test"
	cfg.Session.Backend = BackendRedis

	if _, err := New().WithConfig(cfg).Build(); err == nil {
		t.Error("redis backend without a client should fail Build")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clubadmin.yaml")
	content := `
api:
  base_url: https://api.club.test
  timeout: 5s
session:
  backend: file
  dir: /tmp/clubadmin-test
token:
  pre_check_expiry: false
debtors:
  window_months: 6
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.API.BaseURL != "https://api.club.test" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v", cfg.API.Timeout)
	}
	if cfg.Session.Backend != BackendFile || cfg.Session.Dir != "/tmp/clubadmin-test" {
		t.Errorf("session = %+v", cfg.Session)
	}
	if cfg.Token.PreCheckExpiry {
		t.Error("PreCheckExpiry should be off")
	}
	if cfg.Debtors.WindowMonths != 6 {
		t.Errorf("WindowMonths = %d", cfg.Debtors.WindowMonths)
	}
	// Unset fields keep their defaults.
	if cfg.API.UserAgent != "clubadmin-go" {
		t.Errorf("UserAgent = %q", cfg.API.UserAgent)
	}
	if cfg.Session.TokenKey != "easyvoley_token" {
		t.Errorf("TokenKey = %q", cfg.Session.TokenKey)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("api:\n  base_url: ''\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig should reject a config without base_url")
	}
}
