package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"puresakura/models"
	"puresakura/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const rateLimitMessage = "Too many requests. Please try again later."

// limiterBackend decides whether one more request from key fits the budget.
type limiterBackend interface {
	allow(ctx context.Context, key string) (bool, error)
}

// rateLimiterStore holds a map of IP addresses to their rate limiters.
type rateLimiterStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	every    rate.Limit
	burst    int
}

func newRateLimiterStore(perMinute int) *rateLimiterStore {
	if perMinute <= 0 {
		perMinute = 60
	}
	return &rateLimiterStore{
		limiters: make(map[string]*rate.Limiter),
		every:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
	}
}

// getLimiter returns the rate limiter for a given IP, creating one if it doesn't exist.
func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(s.every, s.burst)
		s.limiters[ip] = limiter
	}
	return limiter
}

func (s *rateLimiterStore) allow(_ context.Context, ip string) (bool, error) {
	return s.getLimiter(ip).Allow(), nil
}

// redisWindow counts requests per IP in fixed one-minute windows so every
// instance shares the same budget.
type redisWindow struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
	now    func() time.Time
}

func newRedisWindow(client redis.Cmdable, perMinute int) *redisWindow {
	if perMinute <= 0 {
		perMinute = 60
	}
	return &redisWindow{
		client: client,
		limit:  int64(perMinute),
		window: time.Minute,
		now:    time.Now,
	}
}

func (w *redisWindow) key(ip string) string {
	bucket := w.now().Unix() / int64(w.window/time.Second)
	return fmt.Sprintf("%s%s:%d", utils.RateLimitKeyPrefix, ip, bucket)
}

func (w *redisWindow) allow(ctx context.Context, ip string) (bool, error) {
	key := w.key(ip)
	pipe := w.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, w.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= w.limit, nil
}

// RateLimitMiddleware limits requests per IP address to perMinute, with a
// burst of the same size. State is local to the process.
func RateLimitMiddleware(perMinute int) gin.HandlerFunc {
	return rateLimit(newRateLimiterStore(perMinute))
}

// RedisRateLimitMiddleware enforces perMinute per IP across every instance
// sharing client. Redis errors let the request through.
func RedisRateLimitMiddleware(client redis.Cmdable, perMinute int) gin.HandlerFunc {
	return rateLimit(newRedisWindow(client, perMinute))
}

func rateLimit(backend limiterBackend) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := getClientIP(c)
		ok, err := backend.allow(c.Request.Context(), ip)
		if err != nil {
			GetRequestLogger(c).Warn("Rate limiter unavailable", zap.String("ip", ip), zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			GetRequestLogger(c).Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.MessageResponse{
				Message: rateLimitMessage,
			})
			return
		}
		c.Next()
	}
}
