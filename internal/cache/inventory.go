package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	postKeyPrefix      = "post:%s"
	likeCountKeyPrefix = "post:%s:likes"
	postListKey        = "posts:front"
)

const (
	PostTTL      = 30 * time.Minute
	LikeCountTTL = 5 * time.Minute
	PostListTTL  = 1 * time.Minute
)

func PostKey(key string) string {
	return fmt.Sprintf(postKeyPrefix, key)
}

func LikeCountKey(key string) string {
	return fmt.Sprintf(likeCountKeyPrefix, key)
}

func PostListKey() string {
	return postListKey
}

// GetJSON attempts to get the key from Redis and unmarshal into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}
	s, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and sets the key with TTL.
func SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, b, ttl).Err()
}

// Aside tries Redis first, on miss it calls fetch (which should populate dest),
// then stores the result in Redis with ttl. fetch must write into dest.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	found, err := GetJSON(ctx, key, dest)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	if err := fetch(); err != nil {
		return err
	}

	// Store into cache (best-effort)
	_ = SetJSON(ctx, key, dest, ttl)
	return nil
}

// Invalidate deletes the given key. No-op without a connected client.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidatePost drops the cached detail and like count for a post.
func InvalidatePost(ctx context.Context, postKey string) {
	Invalidate(ctx, PostKey(postKey))
	Invalidate(ctx, LikeCountKey(postKey))
}

// InvalidatePostList drops the cached front-page listing.
func InvalidatePostList(ctx context.Context) {
	Invalidate(ctx, postListKey)
}
