package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/Dishalex/PhotoShare/internal/consts"
	"github.com/Dishalex/PhotoShare/internal/logging"
	"github.com/Dishalex/PhotoShare/internal/metrics"
	"github.com/Dishalex/PhotoShare/internal/platform/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.lastSeen = time.Now()
		return c.limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	i.ips.Store(ip, &client{limiter: limiter, lastSeen: time.Now()})

	return limiter
}

func (i *IPRateLimiter) cleanupLoop() {
	for {
		time.Sleep(1 * time.Minute)
		i.ips.Range(func(key, value interface{}) bool {
			client := value.(*client)
			if time.Since(client.lastSeen) > 3*time.Minute {
				i.ips.Delete(key)
			}
			return true
		})
	}
}

// allowByRedisRateLimit approximates the token bucket with a fixed window of burst/rps
// seconds shared by every instance. Non-positive rps or burst disables the check.
func allowByRedisRateLimit(ctx context.Context, rdb *redis.Client, key string, rps float64, burst int) (bool, error) {
	if rps <= 0 || burst <= 0 {
		return true, nil
	}
	window := time.Duration(float64(burst) / rps * float64(time.Second))
	if window < time.Second {
		window = time.Second
	}

	var incr *redis.IntCmd
	_, err := rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("redis rate limit: %w", err)
	}
	return incr.Val() <= int64(burst), nil
}

// RateLimitMiddleware limits requests per client IP using the rps/burst settings named by
// the keys. bucket separates the counters of different route groups.
func RateLimitMiddleware(app *service.AppService, bucket, rpsKey, burstKey string) gin.HandlerFunc {
	// one limiter set per route group
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		if !app.GetBool(consts.ConfigRateLimitEnabled) {
			c.Next()
			return
		}

		currentRPS := app.GetFloat64(rpsKey)
		currentBurst := app.GetInt(burstKey)
		ip := c.ClientIP()

		if rdb := app.Redis(); rdb != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
			ok, err := allowByRedisRateLimit(ctx, rdb, app.RedisKey("rate", bucket, ip), currentRPS, currentBurst)
			cancel()
			if err == nil {
				if !ok {
					rejectRateLimited(c, bucket)
					return
				}
				c.Next()
				return
			}
			logging.Debug().Err(err).Msg("redis limiter unavailable, using memory limiter")
		}

		once.Do(func() {
			limiter = NewIPRateLimiter(rate.Limit(currentRPS), currentBurst)
		})

		l := limiter.getLimiter(ip)

		// settings may change at runtime
		if l.Limit() != rate.Limit(currentRPS) {
			l.SetLimit(rate.Limit(currentRPS))
		}
		if l.Burst() != currentBurst {
			l.SetBurst(currentBurst)
		}

		if !l.Allow() {
			rejectRateLimited(c, bucket)
			return
		}
		c.Next()
	}
}

func rejectRateLimited(c *gin.Context, bucket string) {
	metrics.RateLimitRejections.WithLabelValues(bucket).Inc()
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, try again later"})
}
