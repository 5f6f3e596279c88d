// Package throttle rate-limits authentication attempts per key.
//
// Each key (a subject identifier, a client address) gets its own
// token bucket, created lazily on first attempt. Buckets idle past a
// configurable duration are evicted by Sweep; callers decide when to
// sweep, typically on a timer alongside store expiry purges.
package throttle
