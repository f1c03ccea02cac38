// Package goSuite provides a credential broker for the suite
// authorization flow of an enterprise-integration platform: it consumes
// the externally rotated suite ticket, exchanges it for a suite access
// token, caches that token until expiry, and authorizes the fixed set
// of suite service calls (permanent-code exchange, corp token issuance,
// auth/agent metadata, suite activation, IP allow-listing).
//
// The package is designed for concurrent server workloads: Broker
// methods are safe to call from multiple goroutines after
// initialization through [Builder.Build].
//
// # Architecture boundaries
//
// goSuite is the public surface. It exposes [Broker], [Builder],
// [Config], and value types (SuiteToken, CorpToken, MetricsSnapshot,
// etc.). Wire-format concerns live in wire/, ticket sourcing in
// ticket/, and install-state signing in state/.
//
// # What this package must NOT do
//
//   - Retry or back off: one failure per remote call is surfaced to
//     the caller immediately.
//   - Persist the access token across process restarts.
//   - Validate remote response schemas beyond the errcode
//     discriminator.
//
// # Performance contract
//
// Token is the hot path. A cache hit costs one mutex acquisition and
// no network round trips. A miss costs at most one ticket fetch plus
// one exchange round trip, and concurrent misses are coalesced into a
// single in-flight exchange.
package goSuite
