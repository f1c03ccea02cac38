package goSuite

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MrEthical07/goSuite/ticket"
)

type remoteCounts struct {
	mu     sync.Mutex
	byPath map[string]int
}

func (c *remoteCounts) inc(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byPath[path]++
}

func (c *remoteCounts) get(path string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.byPath[path]
}

// newSuiteTestServer runs a mock remote. handlers maps paths to
// response funcs; any unmapped path fails the test. Every hit is
// counted, including ones that overlap in flight.
func newSuiteTestServer(t *testing.T, handlers map[string]http.HandlerFunc) (*httptest.Server, *remoteCounts) {
	t.Helper()

	counts := &remoteCounts{byPath: map[string]int{}}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		counts.inc(r.URL.Path)
		handler, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("unexpected remote call: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		handler(w, r)
	}))

	t.Cleanup(server.Close)
	return server, counts
}

func jsonResponse(t *testing.T, body map[string]any) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(body); err != nil {
			t.Errorf("encode mock response failed: %v", err)
		}
	}
}

func exchangeHandler(t *testing.T) http.HandlerFunc {
	return jsonResponse(t, map[string]any{
		"errcode":      0,
		"errmsg":       "ok",
		"access_token": "tok",
		"expires_in":   7200,
	})
}

type countingTicketSource struct {
	mu     sync.Mutex
	calls  int
	ticket ticket.Ticket
	err    error
}

func newCountingTicketSource(ttl time.Duration) *countingTicketSource {
	return &countingTicketSource{
		ticket: ticket.Ticket{
			Value:     "ticket-1",
			ExpiresAt: time.Now().Add(ttl),
		},
	}
}

func (s *countingTicketSource) FetchTicket(ctx context.Context) (ticket.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return ticket.Ticket{}, s.err
	}
	return s.ticket, nil
}

func (s *countingTicketSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func brokerTestConfig(baseURL string) Config {
	cfg := defaultConfig()
	cfg.Suite.Key = "suite-key"
	cfg.Suite.Secret = "suite-secret"
	cfg.Remote.BaseURL = baseURL
	return cfg
}

func newTestBroker(t *testing.T, cfg Config, src ticket.Source) *Broker {
	t.Helper()

	broker, err := New().
		WithConfig(cfg).
		WithTicketSource(src).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(broker.Close)

	return broker
}

func expireCachedToken(b *Broker) {
	b.cache.mu.Lock()
	b.cache.token.ExpiresAt = time.Now().Add(-time.Second)
	b.cache.mu.Unlock()
}

func TestBuilderRequiresTicketSourceOrRedis(t *testing.T) {
	_, err := New().
		WithConfig(brokerTestConfig("http://remote.invalid/service")).
		Build()
	if err == nil {
		t.Fatal("expected Build to fail without a ticket source")
	}
}

func TestBuilderSingleUse(t *testing.T) {
	src := newCountingTicketSource(time.Minute)
	builder := New().
		WithConfig(brokerTestConfig("http://remote.invalid/service")).
		WithTicketSource(src)

	if _, err := builder.Build(); err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	if _, err := builder.Build(); err == nil {
		t.Fatal("expected second Build to fail")
	}
}

func TestBuilderRejectsInvalidConfig(t *testing.T) {
	cfg := brokerTestConfig("http://remote.invalid/service")
	cfg.Suite.Secret = ""

	_, err := New().
		WithConfig(cfg).
		WithTicketSource(newCountingTicketSource(time.Minute)).
		Build()
	if err == nil {
		t.Fatal("expected Build to reject missing suite secret")
	}
}
