package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache memoizes responses from paid external collaborators (sentiment,
// video analysis). The analytics core itself is deterministic and cheap,
// so it is never cached.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// ContentKey builds a cache key from a namespace and the exact input
// content, so identical transcripts share one collaborator call.
func ContentKey(namespace, content string) string {
	sum := sha256.Sum256([]byte(content))
	return namespace + ":" + hex.EncodeToString(sum[:])
}

// Noop disables caching; every lookup misses.
type Noop struct{}

func (Noop) GetJSON(context.Context, string, any) (bool, error) { return false, nil }

func (Noop) SetJSON(context.Context, string, any, time.Duration) error { return nil }

func (Noop) Del(context.Context, ...string) error { return nil }
