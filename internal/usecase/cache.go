package usecase

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"strings"
	"time"
)

// ReportCache is the slice of the cache the usecases need. The Redis
// implementation degrades to a no-op when the server is unreachable.
type ReportCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// cacheKey builds a stable key from an operation prefix and its inputs.
// Inputs are hashed so free text never lands in the keyspace verbatim.
func cacheKey(prefix string, parts ...string) string {
	h := sha1.Sum([]byte(strings.Join(parts, "\x00")))
	return prefix + ":" + hex.EncodeToString(h[:])
}
