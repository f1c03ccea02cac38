// Package ticket models the short-lived credential seed that the
// remote platform rotates out-of-band. The broker never mints tickets;
// it consumes them through a Source. RedisStore is the production
// Source: the platform pushes each rotation to an integrator callback,
// the callback persists it with Save, and the broker reads it back
// when it needs to mint a suite access token.
package ticket
