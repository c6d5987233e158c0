package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
	"time"
)

// ResultCache stores dispatch results keyed by tool name and argument set.
// Calculators are pure functions, so a repeated request with bit-identical
// inputs can be answered from the cache without re-invoking the calculator.
type ResultCache struct {
	client *RedisClient
	ttl    time.Duration
}

func NewResultCache(client *RedisClient, ttl time.Duration) *ResultCache {
	return &ResultCache{client: client, ttl: ttl}
}

// Key builds a stable cache key: tool name plus a SHA-256 over the arguments
// serialized with sorted keys, so map iteration order never splits entries.
func Key(toolName string, args map[string]interface{}) string {
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		v, _ := json.Marshal(args[k])
		b.WriteString(k)
		b.WriteByte('=')
		b.Write(v)
		b.WriteByte(';')
	}

	sum := sha256.Sum256([]byte(b.String()))
	return "result:" + toolName + ":" + hex.EncodeToString(sum[:])
}

// Get returns the cached envelope body for the key, or ("", false) on miss.
func (rc *ResultCache) Get(ctx context.Context, key string) (string, bool) {
	if rc == nil || rc.client == nil {
		return "", false
	}
	val, err := rc.client.Client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores the envelope body under the key with the configured TTL.
// Failures are swallowed: a broken cache must never fail a calculation.
func (rc *ResultCache) Set(ctx context.Context, key, body string) {
	if rc == nil || rc.client == nil {
		return
	}
	_ = rc.client.Client.Set(ctx, key, body, rc.ttl).Err()
}
