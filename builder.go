package clubadmin

import (
	"errors"
	"net/http"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/easyvoley/clubadmin/internal/audit"
	"github.com/easyvoley/clubadmin/permission"
	"github.com/easyvoley/clubadmin/session"
)

// Builder assembles a [Client]. Zero-value options fall back to
// [DefaultConfig]; Build validates everything at once.
type Builder struct {
	config Config

	httpClient *http.Client
	storage    session.Storage
	redis      redis.UniversalClient
	evaluator  *permission.Evaluator
	logger     *logrus.Logger
	auditSink  AuditSink

	onSessionExpired func()

	built bool
}

// New starts a [Builder] from [DefaultConfig].
func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// WithConfig replaces the whole configuration tree.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithBaseURL sets the API base URL. A trailing slash is trimmed.
func (b *Builder) WithBaseURL(baseURL string) *Builder {
	b.config.API.BaseURL = baseURL
	return b
}

// WithHTTPClient injects the HTTP client, overriding the timeout-derived
// default. Useful for custom transports and for httptest servers.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithStorage injects a session storage backend directly, overriding the
// Session config section.
func (b *Builder) WithStorage(storage session.Storage) *Builder {
	b.storage = storage
	return b
}

// WithRedis supplies the Redis client for the redis session backend.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithEvaluator overrides the default club permission table, for embedders
// with their own capability set.
func (b *Builder) WithEvaluator(evaluator *permission.Evaluator) *Builder {
	b.evaluator = evaluator
	return b
}

// WithLogger enables request/lifecycle logging through the given logger.
func (b *Builder) WithLogger(logger *logrus.Logger) *Builder {
	b.logger = logger
	return b
}

// WithAuditSink enables audit dispatch into sink.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	b.config.Audit.Enabled = true
	return b
}

// WithOnSessionExpired registers the forced-logout hook, fired once per
// dropped session when a 401 arrives.
func (b *Builder) WithOnSessionExpired(hook func()) *Builder {
	b.onSessionExpired = hook
	return b
}

// WithMetricsEnabled toggles the in-process metric registry.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms toggles the request latency histogram.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build validates the configuration and assembles the [Client]. A Builder
// is single-use.
func (b *Builder) Build() (*Client, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	storage := b.storage
	if storage == nil {
		var err error
		storage, err = b.buildStorage(cfg.Session)
		if err != nil {
			return nil, err
		}
	}

	evaluator := b.evaluator
	if evaluator == nil {
		evaluator = permission.NewDefaultEvaluator()
	}

	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.API.Timeout}
	}

	client := &Client{
		config:           cfg,
		baseURL:          strings.TrimRight(cfg.API.BaseURL, "/"),
		httpClient:       httpClient,
		sessions:         session.NewManager(storage),
		evaluator:        evaluator,
		metrics:          NewMetrics(cfg.Metrics),
		logger:           b.logger,
		onSessionExpired: b.onSessionExpired,
	}
	client.audit = audit.NewDispatcher(audit.Config{
		Enabled:    cfg.Audit.Enabled,
		BufferSize: cfg.Audit.BufferSize,
		DropIfFull: cfg.Audit.DropIfFull,
	}, b.auditSink)

	b.built = true

	return client, nil
}

func (b *Builder) buildStorage(cfg SessionConfig) (session.Storage, error) {
	switch cfg.Backend {
	case BackendMemory:
		return session.NewMemoryStorage(), nil
	case BackendFile:
		return session.NewFileStorage(cfg.Dir, cfg.TokenKey, cfg.IdentityKey)
	case BackendRedis:
		if b.redis == nil {
			return nil, errors.New("redis session backend requires a redis client")
		}
		return session.NewRedisStorage(b.redis, cfg.RedisPrefix, cfg.TokenKey, cfg.IdentityKey, cfg.RedisTTL), nil
	default:
		return nil, errors.New("unknown session backend: " + string(cfg.Backend))
	}
}
