// Package store is the key-value persistence adapter. All site state lives
// under four fixed keys as whole JSON documents; every write replaces the
// document at its key.
package store

import "context"

const (
	KeyProducts = "products"
	KeyOrders   = "orders"
	KeyRecipes  = "recipes"
	KeyContent  = "content"
)

// MaxPayloadBytes caps a single document. The backing row store rejects
// oversized payloads anyway; checking here makes the failure mode explicit.
const MaxPayloadBytes = 4 << 20

type KV interface {
	// Get returns the raw document at key, or domain.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put replaces the document at key. Returns domain.ErrPayloadTooLarge
	// when value exceeds MaxPayloadBytes.
	Put(ctx context.Context, key string, value []byte) error
}
