package http_ratelimit_middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/ysn7199/yourmovies/core/internal/delivery/http/common"
	"golang.org/x/time/rate"
)

const MsgTooManyRequests = "Too many requests"

const (
	// MaxBuckets caps the number of tracked clients. When full, the least
	// recently seen client is dropped.
	MaxBuckets = 10000

	minIdleTTL = time.Minute
)

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps one token bucket per client IP. A bucket idle for longer
// than it takes to refill completely is forgotten.
type Limiter struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
	max     int
	now     func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

func New(perSecond float64, burst int) *Limiter {
	idle := minIdleTTL
	if perSecond > 0 {
		if refill := time.Duration(float64(burst) / perSecond * float64(time.Second)); refill > idle {
			idle = refill
		}
	}

	return &Limiter{
		limit:   rate.Limit(perSecond),
		burst:   burst,
		idleTTL: idle,
		max:     MaxBuckets,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

// Len is the number of tracked clients.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func (l *Limiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.idleTTL {
		l.sweep(now)
	}

	b, ok := l.buckets[key]
	if !ok {
		if len(l.buckets) >= l.max {
			l.evictOldest()
		}
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}

func (l *Limiter) sweep(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) >= l.idleTTL {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

func (l *Limiter) evictOldest() {
	var (
		oldestKey string
		oldest    time.Time
	)
	for key, b := range l.buckets {
		if oldestKey == "" || b.lastSeen.Before(oldest) {
			oldestKey, oldest = key, b.lastSeen
		}
	}
	delete(l.buckets, oldestKey)
}

func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !l.allow(ctx.ClientIP()) {
			http_common.Abort(ctx, http.StatusTooManyRequests, MsgTooManyRequests)
			return
		}
		ctx.Next()
	}
}
