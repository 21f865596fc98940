package interfaces

import "context"

// StoreInterface persists opaque values by key. Get reports a missing key
// with found == false and a nil error.
type StoreInterface interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Save(ctx context.Context, key string, value []byte) error
	Close() error
}
