// Package state issues and verifies the signed state parameter carried
// through the suite install/authorize redirect. The token binds a
// random nonce to an expiry so a callback can be tied to the redirect
// that initiated it and replayed or forged callbacks are rejected.
package state
