package public

import (
	"context"
	"time"
)

// Cache guarda respuestas públicas serializadas. Es best-effort: un error
// del cache nunca corta el request.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type noCache struct{}

func (noCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (noCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}
