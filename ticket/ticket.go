package ticket

import (
	"context"
	"time"
)

// Ticket is a read-only copy of the externally rotated credential seed.
// Ownership stays with the supplier; the broker only holds the copy
// until ExpiresAt passes.
type Ticket struct {
	Value     string
	ExpiresAt time.Time
}

// Valid reports whether the ticket can still be exchanged at instant
// now. The comparison is strict: a ticket expiring exactly at now is
// stale. No skew buffer is applied.
func (t Ticket) Valid(now time.Time) bool {
	return t.Value != "" && t.ExpiresAt.After(now)
}

// Source supplies the current ticket. Implementations may have
// arbitrary latency and may fail; the broker surfaces those failures
// to its caller without retrying.
type Source interface {
	FetchTicket(ctx context.Context) (Ticket, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(ctx context.Context) (Ticket, error)

// FetchTicket calls f.
func (f SourceFunc) FetchTicket(ctx context.Context) (Ticket, error) {
	return f(ctx)
}
