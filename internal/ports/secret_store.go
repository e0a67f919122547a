package ports

import "context"

// SecretStore keeps opaque credentials out of plainly readable config files.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
