//go:build unit || e2e

// Package redistest provides an in-memory stand-in for the rate limiter's Redis script.
package redistest

import (
	"context"
	"slices"
	"sync"

	"github.com/redis/go-redis/v9"
)

// BucketScripter answers the token-bucket script from memory. Every key starts full at the
// capacity passed by the caller and never refills; a denied call reports the whole refill
// interval as the retry delay. Keys seen are recorded in call order.
type BucketScripter struct {
	mu     sync.Mutex
	tokens map[string]int64
	keys   []string
}

var _ redis.Scripter = (*BucketScripter)(nil)

func NewBucketScripter() *BucketScripter {
	return &BucketScripter{tokens: map[string]int64{}}
}

// Keys returns the bucket keys in the order they were hit.
func (b *BucketScripter) Keys() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.keys)
}

func (b *BucketScripter) run(ctx context.Context, keys []string, args ...any) *redis.Cmd {
	cmd := redis.NewCmd(ctx)
	if len(keys) != 1 || len(args) < 4 {
		cmd.SetErr(redis.Nil)
		return cmd
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	key := keys[0]
	b.keys = append(b.keys, key)
	tokens, ok := b.tokens[key]
	if !ok {
		tokens = asInt64(args[1])
	}

	if tokens <= 0 {
		cmd.SetVal([]any{int64(0), int64(0), asInt64(args[3])})
		return cmd
	}
	tokens--
	b.tokens[key] = tokens
	cmd.SetVal([]any{int64(1), tokens, int64(0)})
	return cmd
}

func (b *BucketScripter) Eval(ctx context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return b.run(ctx, keys, args...)
}

func (b *BucketScripter) EvalSha(ctx context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return b.run(ctx, keys, args...)
}

func (b *BucketScripter) EvalRO(ctx context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return b.run(ctx, keys, args...)
}

func (b *BucketScripter) EvalShaRO(ctx context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return b.run(ctx, keys, args...)
}

func (b *BucketScripter) ScriptExists(ctx context.Context, hashes ...string) *redis.BoolSliceCmd {
	cmd := redis.NewBoolSliceCmd(ctx)
	cmd.SetVal(make([]bool, len(hashes)))
	return cmd
}

func (b *BucketScripter) ScriptLoad(ctx context.Context, _ string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	cmd.SetVal("")
	return cmd
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int64:
		return n
	case int32:
		return int64(n)
	default:
		return 0
	}
}
