package goSuite

import (
	"errors"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/MrEthical07/goSuite/state"
	"github.com/MrEthical07/goSuite/ticket"
	"github.com/MrEthical07/goSuite/wire"
)

// Builder defines a public type used by goSuite APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config

	httpClient   *http.Client
	redis        *redis.Client
	ticketSource ticket.Source
	auditSink    AuditSink

	built bool
}

// New describes the new operation and its observable behavior.
//
// New may return an error when input validation, dependency calls, or security checks fail.
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig may return an error when input validation, dependency calls, or security checks fail.
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithHTTPClient injects the transport used for every remote call.
// Timeouts and cancellation policy belong to this client; the broker
// adds none of its own.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithRedis wires a redis-backed ticket store as the ticket source.
// Ignored when an explicit source is provided via WithTicketSource.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithTicketSource describes the withticketsource operation and its observable behavior.
//
// WithTicketSource may return an error when input validation, dependency calls, or security checks fail.
// WithTicketSource does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithTicketSource(src ticket.Source) *Builder {
	b.ticketSource = src
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink may return an error when input validation, dependency calls, or security checks fail.
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled may return an error when input validation, dependency calls, or security checks fail.
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms describes the withlatencyhistograms operation and its observable behavior.
//
// WithLatencyHistograms may return an error when input validation, dependency calls, or security checks fail.
// WithLatencyHistograms does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) Build() (*Broker, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	source := b.ticketSource
	if source == nil {
		if b.redis == nil {
			return nil, errors.New("ticket source or redis client required")
		}
		source = ticket.NewRedisStore(b.redis, cfg.Suite.Key)
	}

	remote, err := wire.NewClient(cfg.Remote.BaseURL, b.httpClient)
	if err != nil {
		return nil, err
	}

	broker := &Broker{
		config:  cfg,
		remote:  remote,
		tickets: source,
		cache:   &tokenCache{},
	}

	if cfg.InstallState.Enabled {
		sm, err := state.NewManager(state.Config{
			SigningKey: cfg.InstallState.SigningKey,
			TTL:        cfg.InstallState.TTL,
			Issuer:     cfg.InstallState.Issuer,
		})
		if err != nil {
			return nil, err
		}
		broker.state = sm
	}

	broker.audit = newAuditDispatcher(cfg.Audit, b.auditSink)
	broker.metrics = NewMetrics(cfg.Metrics)

	b.built = true

	return broker, nil
}
