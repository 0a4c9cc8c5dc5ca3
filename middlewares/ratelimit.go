package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiterConfig holds the configuration for the rate limiter.
// Limits apply per client IP.
type RateLimiterConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiterRegistry struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	config  RateLimiterConfig
}

func (r *rateLimiterRegistry) get(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	client, ok := r.clients[ip]
	if !ok {
		client = &clientLimiter{
			limiter: rate.NewLimiter(rate.Limit(r.config.RequestsPerSecond), r.config.Burst),
		}
		r.clients[ip] = client
	}
	client.lastSeen = time.Now()
	return client.limiter
}

// evictIdle drops limiters for clients not seen within maxIdle.
func (r *rateLimiterRegistry) evictIdle(maxIdle time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	for ip, client := range r.clients {
		if client.lastSeen.Before(cutoff) {
			delete(r.clients, ip)
		}
	}
}

// NewRateLimiterMiddleware creates a per-client-IP rate limiter middleware.
func NewRateLimiterMiddleware(config RateLimiterConfig) gin.HandlerFunc {
	registry := &rateLimiterRegistry{
		clients: make(map[string]*clientLimiter),
		config:  config,
	}

	go func() {
		for range time.Tick(time.Minute) {
			registry.evictIdle(3 * time.Minute)
		}
	}()

	return func(c *gin.Context) {
		if !registry.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}
