// Package cache keeps login sessions and per-user calorie plans in redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/actuallystonmai/nutrisathi-service/internal/calorie"
	"github.com/actuallystonmai/nutrisathi-service/internal/domain"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = 10 * time.Minute

type Cache struct {
	client  *redis.Client
	planTTL time.Duration
}

// NewCache returns a cache whose plan entries live for planTTL; zero uses
// ten minutes.
func NewCache(client *redis.Client, planTTL time.Duration) *Cache {
	if planTTL <= 0 {
		planTTL = defaultTTL
	}
	return &Cache{client: client, planTTL: planTTL}
}

func sessionKey(token string) string {
	return "session:" + token
}

// Per-user entries share the user:<id>: prefix so ClearUserCache can find
// them all.
func userPrefix(userID int64) string {
	return fmt.Sprintf("user:%d:", userID)
}

func planKey(userID int64) string {
	return userPrefix(userID) + "plan"
}

// CreateSession binds token to userID for ttl.
func (c *Cache) CreateSession(ctx context.Context, token string, userID int64, ttl time.Duration) error {
	if err := c.client.Set(ctx, sessionKey(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// SessionUser resolves a token, returning domain.ErrUnauthenticated when it
// is unknown or expired.
func (c *Cache) SessionUser(ctx context.Context, token string) (int64, error) {
	val, err := c.client.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, domain.ErrUnauthenticated
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get session: %w", err)
	}
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt session %s: %w", token, err)
	}
	return id, nil
}

func (c *Cache) DeleteSession(ctx context.Context, token string) error {
	if err := c.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// GetPlan returns the cached calorie plan, or nil on a miss.
func (c *Cache) GetPlan(ctx context.Context, userID int64) (*calorie.Result, error) {
	key := planKey(userID)
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plan from cache: %w", err)
	}

	var plan calorie.Result
	if err := json.Unmarshal(val, &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan %s: %w", key, err)
	}
	return &plan, nil
}

func (c *Cache) SetPlan(ctx context.Context, userID int64, plan *calorie.Result) error {
	val, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}
	if err := c.client.Set(ctx, planKey(userID), val, c.planTTL).Err(); err != nil {
		return fmt.Errorf("failed to set plan in cache: %w", err)
	}
	return nil
}

// ClearUserCache drops every cached entry derived from a user's profile.
func (c *Cache) ClearUserCache(ctx context.Context, userID int64) error {
	iter := c.client.Scan(ctx, 0, userPrefix(userID)+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
