package goSuite

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MrEthical07/goSuite/ticket"
	"github.com/MrEthical07/goSuite/wire"
)

const refreshGroupKey = "suite_access_token"

// tokenCache is the single mutable credential slot. The zero value is
// the expired sentinel. Ticket and token expiry are tracked
// independently: a still-valid ticket survives a token refresh, and a
// stale ticket is re-fetched even when requested mid-refresh.
type tokenCache struct {
	mu     sync.Mutex
	token  SuiteToken
	ticket ticket.Ticket
	group  singleflight.Group
}

type suiteTokenRequest struct {
	SuiteKey    string `json:"suite_key"`
	SuiteSecret string `json:"suite_secret"`
	SuiteTicket string `json:"suite_ticket"`
}

type suiteTokenResponse struct {
	wire.Result
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Token is the single gate every business operation passes through.
// It returns the cached token while its expiry is in the future and
// otherwise performs one coalesced refresh: fetch a ticket (from the
// broker's ticket cache or the source), exchange it at
// /get_suite_token, write the cache, return the new token.
//
// Concurrent callers that observe an expired cache share one in-flight
// exchange; the shared call runs under the first caller's context.
// Token never blocks longer than one ticket fetch plus one remote
// round trip.
func (b *Broker) Token(ctx context.Context) (SuiteToken, error) {
	if b == nil || b.cache == nil {
		return SuiteToken{}, ErrBrokerNotReady
	}

	b.cache.mu.Lock()
	cached := b.cache.token
	b.cache.mu.Unlock()

	if cached.Valid(time.Now()) {
		b.metricInc(MetricTokenCacheHit)
		return cached, nil
	}

	v, err, shared := b.cache.group.Do(refreshGroupKey, func() (interface{}, error) {
		return b.refreshToken(ctx)
	})
	if err != nil {
		return SuiteToken{}, err
	}
	if shared {
		b.metricInc(MetricTokenRefreshCoalesced)
	}

	return v.(SuiteToken), nil
}

// refreshToken performs one ticket-for-token exchange and persists the
// result into the cache slot before returning it. It runs only inside
// the singleflight group, which makes the broker the single writer of
// the slot.
func (b *Broker) refreshToken(ctx context.Context) (SuiteToken, error) {
	tkt, err := b.validTicket(ctx)
	if err != nil {
		b.metricInc(MetricTokenRefreshFailure)
		b.emitAudit(ctx, auditEventTokenRefreshFailure, false, "get_suite_token", "", err, nil)
		return SuiteToken{}, err
	}

	var resp suiteTokenResponse
	req := suiteTokenRequest{
		SuiteKey:    b.config.Suite.Key,
		SuiteSecret: b.config.Suite.Secret,
		SuiteTicket: tkt.Value,
	}

	// The exchange endpoint takes no query credential; it produces one.
	start := time.Now()
	err = b.remote.Post(ctx, "/get_suite_token", nil, req, &resp)
	if b.metrics != nil {
		b.metrics.Observe(MetricRemoteLatency, time.Since(start))
	}
	if err != nil {
		b.metricInc(MetricTokenRefreshFailure)
		b.emitAudit(ctx, auditEventTokenRefreshFailure, false, "get_suite_token", "", err, nil)
		return SuiteToken{}, err
	}
	if resp.AccessToken == "" {
		b.metricInc(MetricTokenRefreshFailure)
		b.emitAudit(ctx, auditEventTokenRefreshFailure, false, "get_suite_token", "", ErrTokenUnavailable, nil)
		return SuiteToken{}, ErrTokenUnavailable
	}

	ttl := time.Duration(resp.ExpiresIn) * time.Second
	if ttl <= 0 {
		ttl = b.config.Token.DefaultTTL
	}

	token := SuiteToken{
		Value:     resp.AccessToken,
		ExpiresAt: time.Now().Add(ttl),
	}

	b.cache.mu.Lock()
	b.cache.token = token
	b.cache.mu.Unlock()

	b.metricInc(MetricTokenRefreshSuccess)
	b.emitAudit(ctx, auditEventTokenRefreshSuccess, true, "get_suite_token", "", nil, func() map[string]string {
		return map[string]string{
			"expires_at": token.ExpiresAt.UTC().Format(time.RFC3339),
		}
	})

	return token, nil
}

// validTicket returns the broker's cached ticket while it is fresh and
// consults the source otherwise. Ticket freshness is judged by the
// ticket's own expiry, never by the token's.
func (b *Broker) validTicket(ctx context.Context) (ticket.Ticket, error) {
	now := time.Now()

	b.cache.mu.Lock()
	cached := b.cache.ticket
	b.cache.mu.Unlock()

	if cached.Valid(now) {
		b.metricInc(MetricTicketCacheHit)
		return cached, nil
	}

	fetched, err := b.tickets.FetchTicket(ctx)
	if err != nil {
		b.metricInc(MetricTicketFetchFailure)
		b.emitAudit(ctx, auditEventTicketFetchFailure, false, "", "", ErrTicketUnavailable, nil)
		return ticket.Ticket{}, fmt.Errorf("%w: %v", ErrTicketUnavailable, err)
	}
	if fetched.ExpiresAt.IsZero() {
		fetched.ExpiresAt = now.Add(b.config.Ticket.DefaultTTL)
	}
	if !fetched.Valid(now) {
		b.metricInc(MetricTicketFetchFailure)
		b.emitAudit(ctx, auditEventTicketFetchFailure, false, "", "", ErrTicketUnavailable, nil)
		return ticket.Ticket{}, ErrTicketUnavailable
	}

	b.cache.mu.Lock()
	b.cache.ticket = fetched
	b.cache.mu.Unlock()

	b.metricInc(MetricTicketFetchSuccess)
	b.emitAudit(ctx, auditEventTicketFetchSuccess, true, "", "", nil, nil)

	return fetched, nil
}
