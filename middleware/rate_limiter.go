package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"brightsmile/config"
	"brightsmile/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// fixedWindowScript increments the per-client counter and arms the window
// expiry on the first hit.
var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// rateLimiterStore holds a map of IP addresses to their in-memory limiters.
// Used when Redis is not configured.
type rateLimiterStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
}

var limiterStore = &rateLimiterStore{
	limiters: make(map[string]*rate.Limiter),
}

// getLimiter returns the rate limiter for a given IP, creating one if it doesn't exist.
func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		perMin := config.AppConfig.MaxRequestsPerMin
		if perMin <= 0 {
			perMin = 100
		}
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin)
		s.limiters[ip] = limiter
	}
	return limiter
}

// RateLimitMiddleware limits requests per IP address. When Redis is
// configured the window is shared across instances; otherwise each process
// keeps its own token buckets. A Redis error fails open so the webhook
// never drops bookings because the limiter backend is down.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		ip := getClientIP(c)

		if client := utils.GetRateLimitClient(); client != nil {
			limit := config.AppConfig.MaxRequestsPerMin
			if limit <= 0 {
				limit = 100
			}
			key := "rl:" + ip
			windowMs := strconv.FormatInt(time.Minute.Milliseconds(), 10)
			count, err := fixedWindowScript.Run(c.Request.Context(), client, []string{key}, windowMs).Int64()
			if err != nil {
				logger.Warn("Rate limiter Redis error, failing open", zap.Error(err))
				c.Next()
				return
			}
			if count > int64(limit) {
				logger.Warn("Rate limit exceeded", zap.String("ip", ip))
				c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
				return
			}
			c.Next()
			return
		}

		limiter := limiterStore.getLimiter(ip)
		if !limiter.Allow() {
			logger.Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
