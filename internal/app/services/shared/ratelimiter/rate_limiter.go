package ratelimiter

import (
	"context"
	"fmt"
	"mamacare-service/internal/app/contracts"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ResourceLimiter is a fixed-window counter stored in Redis with a TTL equal
// to the window duration.
type ResourceLimiter struct {
	redis contracts.RedisRepository
	log   *zap.Logger
}

func NewResourceLimiter(redis contracts.RedisRepository, log *zap.Logger) *ResourceLimiter {
	return &ResourceLimiter{redis: redis, log: log}
}

type ApplyResourceLimiterInput struct {
	// ResourceName is the limited entity, e.g. a login email.
	ResourceName string
	// LimiterGroupName namespaces the limiter key.
	LimiterGroupName  string
	WindowDurationSec int
	MaxQuota          int
	// NowUTC defaults to time.Now().UTC().
	NowUTC time.Time
}

type ApplyResourceLimiterOutput struct {
	Allowed        bool
	RetryAfterSecs int
}

func (l *ResourceLimiter) ApplyResourceLimiter(ctx context.Context, in *ApplyResourceLimiterInput) (*ApplyResourceLimiterOutput, error) {
	if in == nil {
		return &ApplyResourceLimiterOutput{Allowed: false}, fmt.Errorf("nil limiter input")
	}

	resource := strings.ToLower(strings.TrimSpace(in.ResourceName))
	group := strings.ToUpper(strings.TrimSpace(in.LimiterGroupName))
	windowSec := in.WindowDurationSec
	if windowSec <= 0 {
		windowSec = 60
	}
	if in.MaxQuota <= 0 {
		return &ApplyResourceLimiterOutput{Allowed: true}, nil
	}
	if resource == "" || group == "" {
		return &ApplyResourceLimiterOutput{Allowed: false, RetryAfterSecs: windowSec}, nil
	}

	now := in.NowUTC
	if now.IsZero() {
		now = time.Now().UTC()
	}

	windowID := now.Unix() / int64(windowSec)
	key := fmt.Sprintf("%s:%s:%d", group, resource, windowID)

	ttl := time.Duration(windowSec)*time.Second + time.Second
	count, err := l.redis.IncrementWithTTL(ctx, key, ttl)
	if err != nil {
		l.log.Error("ResourceLimiter.ApplyResourceLimiter increment failed",
			zap.String("key", key),
			zap.Error(err))
		return &ApplyResourceLimiterOutput{Allowed: false}, err
	}

	if count > int64(in.MaxQuota) {
		nextWindowStart := (windowID + 1) * int64(windowSec)
		return &ApplyResourceLimiterOutput{
			Allowed:        false,
			RetryAfterSecs: int(nextWindowStart-now.Unix()) + 1,
		}, nil
	}
	return &ApplyResourceLimiterOutput{Allowed: true}, nil
}
