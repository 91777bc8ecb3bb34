package clubadmin

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

// Config is the full client configuration tree. Instances are configured
// during initialization and then treated as immutable.
type Config struct {
	API     APIConfig
	Session SessionConfig
	Token   TokenConfig
	Audit   AuditConfig
	Metrics MetricsConfig
	Debtors DebtorsConfig
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig describes the remote back-office API.
type APIConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionBackend selects where the session pair persists.
type SessionBackend string

const (
	// BackendMemory keeps the session in process memory only.
	BackendMemory SessionBackend = "memory"
	// BackendFile persists the session as two files in a directory.
	BackendFile SessionBackend = "file"
	// BackendRedis persists the session in Redis.
	BackendRedis SessionBackend = "redis"
)

// SessionConfig controls session persistence.
type SessionConfig struct {
	Backend SessionBackend

	// Dir is the storage directory for the file backend.
	Dir string

	// TokenKey and IdentityKey name the persisted entries. Empty values
	// fall back to the historical easyvoley_token / easyvoley_user keys.
	TokenKey    string
	IdentityKey string

	// RedisPrefix namespaces the Redis keys; RedisTTL of zero stores the
	// pair without expiry.
	RedisPrefix string
	RedisTTL    time.Duration
}

/*
====================================
TOKEN CONFIG
====================================
*/

// TokenConfig controls local token inspection.
type TokenConfig struct {
	// PreCheckExpiry skips the restore round trip when the stored token's
	// exp claim is already in the past. Opaque tokens always go remote.
	PreCheckExpiry bool
}

// AuditConfig controls the async audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig controls the in-process metrics registry.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

// DebtorsConfig controls the local debtor computation.
type DebtorsConfig struct {
	// WindowMonths is how many calendar months, ending at the current
	// month inclusive, are checked for unpaid quotas.
	WindowMonths int
}

/*
====================================
DEFAULT CONFIG
====================================
*/

// DefaultConfig returns the configuration a bare New() starts from.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			Timeout:   10 * time.Second,
			UserAgent: "clubadmin-go",
		},
		Session: SessionConfig{
			Backend:     BackendMemory,
			TokenKey:    "easyvoley_token",
			IdentityKey: "easyvoley_user",
			RedisPrefix: "clubadmin",
		},
		Token: TokenConfig{
			PreCheckExpiry: true,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
		Debtors: DebtorsConfig{
			WindowMonths: 12,
		},
	}
}

func cloneConfig(cfg Config) Config {
	return cfg
}

/*
====================================
VALIDATION
====================================
*/

// Validate checks the configuration tree. It is called by Build; callers
// constructing a Config by hand can call it directly. An empty session
// backend is normalized to [BackendMemory].
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return errors.New("API BaseURL is required")
	}
	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("API BaseURL must be an absolute URL")
	}
	if c.API.Timeout < 0 {
		return errors.New("API Timeout must be >= 0")
	}

	if c.Session.Backend == "" {
		c.Session.Backend = BackendMemory
	}
	switch c.Session.Backend {
	case BackendMemory, BackendRedis:
		// valid
	case BackendFile:
		if c.Session.Dir == "" {
			return errors.New("Session Dir is required for the file backend")
		}
	default:
		return errors.New("Session Backend must be memory, file, or redis")
	}
	if c.Session.RedisTTL < 0 {
		return errors.New("Session RedisTTL must be >= 0")
	}

	if c.Audit.Enabled {
		if c.Audit.BufferSize <= 0 {
			return errors.New("Audit BufferSize must be > 0 when audit is enabled")
		}
	}

	if c.Debtors.WindowMonths <= 0 {
		return errors.New("Debtors WindowMonths must be > 0")
	}
	if c.Debtors.WindowMonths > 120 {
		return errors.New("Debtors WindowMonths must be <= 120")
	}

	return nil
}
