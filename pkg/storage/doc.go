// Package storage provides token holders and the in-memory token store.
//
// Two surfaces:
//
//   - Holder is the per-request current-token slot: get, set, clear.
//   - Store keeps issued tokens as state snapshots, looked up by the
//     hash of the secret the client presents. Entries carry a TTL and
//     count against a per-subject quota; lookups rebuild a fresh token
//     from the stored snapshot, never handing out shared state.
//
// The store shards its indexes (see internal/shardmap) and holds a
// single global lock only for operations spanning multiple indexes.
// Activity is observable through an optional Prometheus registry.
package storage
