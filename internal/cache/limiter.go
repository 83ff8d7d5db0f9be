// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// limiter.go provides a Valkey-backed fixed-window rate limiter. Unlike
// the in-memory limiter in the middleware package, counts survive process
// restarts and are shared between replicas, which matters for the
// unauthenticated contact form.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const limiterKeyPrefix = "ratelimit:"

// Limiter counts requests per key in fixed windows stored in Valkey.
type Limiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewLimiter creates a limiter allowing limit requests per window.
func NewLimiter(client *redis.Client, limit int, window time.Duration) *Limiter {
	return &Limiter{client: client, limit: limit, window: window}
}

// Allow reports whether the key may make another request in the current
// window. On a Valkey error it allows the request — losing rate limiting
// briefly is better than taking down the contact form.
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	window := time.Now().Unix() / int64(l.window.Seconds())
	redisKey := fmt.Sprintf("%s%s:%d", limiterKeyPrefix, key, window)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("rate limiter valkey error", "key", key, "error", err)
		return true
	}

	return incr.Val() <= int64(l.limit)
}
