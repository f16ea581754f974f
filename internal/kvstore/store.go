// Package kvstore provides the durable string-keyed key-value store the
// account and note services persist through.
package kvstore

import "context"

// Store is an asynchronous, durable, string-keyed key-value store.
// Values are opaque strings (the services store JSON documents in them).
//
// Contract:
//   - Get returns common.ErrNotFound when the key is absent.
//   - Set overwrites or creates.
//   - Delete is idempotent; deleting an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
