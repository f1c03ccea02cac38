package goSuite

import (
	"errors"
	"time"
)

// Config defines a public type used by goSuite APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Suite        SuiteConfig
	Remote       RemoteConfig
	Token        TokenConfig
	Ticket       TicketConfig
	InstallState InstallStateConfig
	Audit        AuditConfig
	Metrics      MetricsConfig
}

/*
====================================
SUITE CONFIG
====================================
*/

// SuiteConfig carries the suite identity issued by the platform.
type SuiteConfig struct {
	Key    string
	Secret string
}

/*
====================================
REMOTE CONFIG
====================================
*/

// RemoteConfig locates the remote suite service. BaseURL is the
// service root (".../service"); InstallBaseURL is the browser-facing
// authorization page used by [Broker.InstallURL]. Timeouts and
// cancellation are owned by the injected *http.Client, not configured
// here.
type RemoteConfig struct {
	BaseURL        string
	InstallBaseURL string
}

/*
====================================
TOKEN / TICKET CONFIG
====================================
*/

// TokenConfig defines a public type used by goSuite APIs.
//
// TokenConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type TokenConfig struct {
	// DefaultTTL is the validity window applied when an exchange
	// response omits expires_in.
	DefaultTTL time.Duration
}

// TicketConfig defines a public type used by goSuite APIs.
//
// TicketConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type TicketConfig struct {
	// DefaultTTL is the validity window applied when a source returns
	// a ticket with no expiry of its own.
	DefaultTTL time.Duration
}

/*
====================================
INSTALL STATE CONFIG
====================================
*/

// InstallStateConfig controls the signed state parameter carried
// through the install/authorize redirect.
type InstallStateConfig struct {
	Enabled    bool
	SigningKey []byte
	TTL        time.Duration
	Issuer     string
}

// AuditConfig defines a public type used by goSuite APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig defines a public type used by goSuite APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

func defaultConfig() Config {
	return Config{
		Token: TokenConfig{
			DefaultTTL: 20 * time.Minute,
		},
		Ticket: TicketConfig{
			DefaultTTL: 20 * time.Minute,
		},
		InstallState: InstallStateConfig{
			Enabled: false,
			TTL:     10 * time.Minute,
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
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.InstallState.SigningKey = cloneBytes(cfg.InstallState.SigningKey)
	return out
}

func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

/*
====================================
VALIDATION
====================================
*/

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	// Suite identity
	if c.Suite.Key == "" {
		return errors.New("Suite Key must be provided")
	}
	if c.Suite.Secret == "" {
		return errors.New("Suite Secret must be provided")
	}

	// Remote
	if c.Remote.BaseURL == "" {
		return errors.New("Remote BaseURL must be provided")
	}

	// Token / ticket windows
	if c.Token.DefaultTTL <= 0 {
		return errors.New("Token DefaultTTL must be > 0")
	}
	if c.Ticket.DefaultTTL <= 0 {
		return errors.New("Ticket DefaultTTL must be > 0")
	}

	// Install state
	if c.InstallState.Enabled {
		if len(c.InstallState.SigningKey) == 0 {
			return errors.New("InstallState requires SigningKey")
		}
		if c.InstallState.TTL <= 0 {
			return errors.New("InstallState TTL must be > 0")
		}
		if c.Remote.InstallBaseURL == "" {
			return errors.New("InstallState requires Remote InstallBaseURL")
		}
	}

	// Audit
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("Audit BufferSize must be > 0")
	}

	return nil
}
