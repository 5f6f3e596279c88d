// Package shardmap provides a concurrent-safe sharded map for string keys.
//
// Sharding spreads lock contention across independent RWMutex-guarded
// maps; the shard for a key is chosen by murmur3 hash. Used by the
// token store, whose keys (secret hashes, entry ids) are uniformly
// distributed strings.
package shardmap
