package redisclient

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Client wraps a Redis client with OpenTelemetry tracing
type Client struct {
	cmdable redis.Cmdable
}

// NewClient creates a new traced Redis client
func NewClient(client *redis.Client) *Client {
	return &Client{cmdable: client}
}

// startSpan opens a span for a Redis operation with the common attributes
func startSpan(ctx context.Context, op, key string) (context.Context, trace.Span, time.Time) {
	ctx, span := otel.Tracer("redis").Start(ctx, "redis."+op,
		trace.WithAttributes(
			attribute.String("redis.key", key),
			attribute.String("redis.operation", op),
			attribute.String("redis.client", "avalia-api"),
		),
	)
	return ctx, span, time.Now()
}

// endSpan records duration and error status for a finished operation
func endSpan(span trace.Span, start time.Time, err error) {
	duration := time.Since(start)
	span.SetAttributes(
		attribute.Int64("redis.duration_ms", duration.Milliseconds()),
	)
	if err != nil && err != redis.Nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "success")
	}
	span.End()
}

// Get wraps Redis GET with tracing
func (c *Client) Get(ctx context.Context, key string) *redis.StringCmd {
	ctx, span, start := startSpan(ctx, "get", key)
	cmd := c.cmdable.Get(ctx, key)
	endSpan(span, start, cmd.Err())
	return cmd
}

// Set wraps Redis SET with tracing
func (c *Client) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	ctx, span, start := startSpan(ctx, "set", key)
	span.SetAttributes(attribute.String("redis.expiration", expiration.String()))
	cmd := c.cmdable.Set(ctx, key, value, expiration)
	endSpan(span, start, cmd.Err())
	return cmd
}

// SetNX wraps Redis SETNX with tracing
func (c *Client) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	ctx, span, start := startSpan(ctx, "setnx", key)
	span.SetAttributes(attribute.String("redis.expiration", expiration.String()))
	cmd := c.cmdable.SetNX(ctx, key, value, expiration)
	endSpan(span, start, cmd.Err())
	return cmd
}

// Del wraps Redis DEL with tracing
func (c *Client) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	key := ""
	if len(keys) > 0 {
		key = keys[0]
	}
	ctx, span, start := startSpan(ctx, "del", key)
	span.SetAttributes(attribute.Int("redis.key_count", len(keys)))
	cmd := c.cmdable.Del(ctx, keys...)
	endSpan(span, start, cmd.Err())
	return cmd
}

// Incr wraps Redis INCR with tracing
func (c *Client) Incr(ctx context.Context, key string) *redis.IntCmd {
	ctx, span, start := startSpan(ctx, "incr", key)
	cmd := c.cmdable.Incr(ctx, key)
	endSpan(span, start, cmd.Err())
	return cmd
}

// Expire wraps Redis EXPIRE with tracing
func (c *Client) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	ctx, span, start := startSpan(ctx, "expire", key)
	span.SetAttributes(attribute.String("redis.expiration", expiration.String()))
	cmd := c.cmdable.Expire(ctx, key, expiration)
	endSpan(span, start, cmd.Err())
	return cmd
}

// TTL wraps Redis TTL with tracing
func (c *Client) TTL(ctx context.Context, key string) *redis.DurationCmd {
	ctx, span, start := startSpan(ctx, "ttl", key)
	cmd := c.cmdable.TTL(ctx, key)
	endSpan(span, start, cmd.Err())
	return cmd
}

// Ping wraps Redis PING with tracing
func (c *Client) Ping(ctx context.Context) *redis.StatusCmd {
	ctx, span, start := startSpan(ctx, "ping", "")
	cmd := c.cmdable.Ping(ctx)
	endSpan(span, start, cmd.Err())
	return cmd
}
