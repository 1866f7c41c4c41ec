package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/prefeitura-rio/app-cadastro/internal/logging"
	"github.com/prefeitura-rio/app-cadastro/internal/redisclient"
)

// LoginLimiter counts failed logins per login and client IP in Redis and
// locks the pair out once maxAttempts is reached within window.
// Redis errors never block a login.
type LoginLimiter struct {
	redis       *redisclient.Client
	maxAttempts int
	window      time.Duration
	logger      *logging.SafeLogger
}

// NewLoginLimiter creates a limiter. A nil client or maxAttempts <= 0 disables it.
func NewLoginLimiter(client *redisclient.Client, maxAttempts int, window time.Duration, logger *logging.SafeLogger) *LoginLimiter {
	return &LoginLimiter{
		redis:       client,
		maxAttempts: maxAttempts,
		window:      window,
		logger:      logger,
	}
}

func (l *LoginLimiter) enabled() bool {
	return l != nil && l.redis != nil && l.maxAttempts > 0
}

func loginAttemptsKey(usuario, ip string) string {
	return "login_attempts:" + strings.ToLower(strings.TrimSpace(usuario)) + ":" + ip
}

// Blocked reports whether the pair already reached the failure limit
func (l *LoginLimiter) Blocked(ctx context.Context, usuario, ip string) bool {
	if !l.enabled() {
		return false
	}

	key := loginAttemptsKey(usuario, ip)
	val, err := l.redis.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			l.logger.Warn("login limiter lookup failed", zap.Error(err), zap.String("usuario", usuario))
		}
		return false
	}

	count, err := strconv.Atoi(val)
	if err != nil {
		l.logger.Warn("login limiter holds a non numeric counter", zap.String("key", key), zap.String("value", val))
		return false
	}

	if count >= l.maxAttempts {
		l.ensureWindow(ctx, key)
		l.logger.Warn("login blocked",
			zap.String("usuario", usuario),
			zap.String("ip", ip),
			zap.Int("attempts", count),
			zap.Int("max_attempts", l.maxAttempts))
		return true
	}
	return false
}

// RegisterFailure increments the counter, starting the window on the first failure
func (l *LoginLimiter) RegisterFailure(ctx context.Context, usuario, ip string) {
	if !l.enabled() {
		return
	}

	key := loginAttemptsKey(usuario, ip)
	count, err := l.redis.Incr(ctx, key).Result()
	if err != nil {
		l.logger.Warn("failed to count login failure", zap.Error(err), zap.String("usuario", usuario))
		return
	}

	if count == 1 {
		l.startWindow(ctx, key)
	} else {
		l.ensureWindow(ctx, key)
	}

	l.logger.Debug("login failure registered",
		zap.String("usuario", usuario),
		zap.Int64("attempts", count),
		zap.Int("max_attempts", l.maxAttempts))
}

func (l *LoginLimiter) startWindow(ctx context.Context, key string) {
	if err := l.redis.Expire(ctx, key, l.window).Err(); err != nil {
		l.logger.Warn("failed to set login lockout window", zap.Error(err), zap.String("key", key))
	}
}

// ensureWindow restarts the window of a counter left without a TTL, which
// happens when the EXPIRE after its first INCR failed
func (l *LoginLimiter) ensureWindow(ctx context.Context, key string) {
	ttl, err := l.redis.TTL(ctx, key).Result()
	if err != nil {
		l.logger.Warn("failed to read login lockout window", zap.Error(err), zap.String("key", key))
		return
	}
	if ttl == -1 {
		l.logger.Warn("login counter without lockout window", zap.String("key", key))
		l.startWindow(ctx, key)
	}
}

// Reset clears the counter after a successful login
func (l *LoginLimiter) Reset(ctx context.Context, usuario, ip string) {
	if !l.enabled() {
		return
	}
	if err := l.redis.Del(ctx, loginAttemptsKey(usuario, ip)).Err(); err != nil {
		l.logger.Warn("failed to reset login attempts", zap.Error(err), zap.String("usuario", usuario))
	}
}
