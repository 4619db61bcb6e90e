// Package store abstracts the keyed state store each entity service owns.
// Backends: the Dapr sidecar state API (default), Redis, and Postgres. All
// three hold the same key layout ("user:{id}", "order:{id}", "product:{id}",
// "user-orders:{userId}", and the composite "user:{userId}" records), so a
// deployment can switch backends without data reshaping.
package store

import "context"

// Store reads and writes single JSON documents by key. Get reports a missing
// key through the found flag with a nil error; err is reserved for transport
// failures.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}
