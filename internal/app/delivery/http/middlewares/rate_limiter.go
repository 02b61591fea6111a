package middlewares

import (
	"errors"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"symptomix-service/internal/pkg/constvars"
	"symptomix-service/internal/pkg/exceptions"
	"symptomix-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per-IP token bucket. A client that drains its bucket is
// blocked for blockTime before it gets a fresh one. Idle clients are swept
// lazily on later requests.
type RateLimiter struct {
	visitors  map[string]*visitor
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	idleTTL   time.Duration
	lastSweep time.Time
	log       *zap.Logger
	now       func() time.Time
}

func NewRateLimiter(logger *zap.Logger, burst int, per, blockTime time.Duration) *RateLimiter {
	// A bucket idle for idleTTL has fully refilled.
	idleTTL := per * time.Duration(burst)
	if idleTTL < time.Minute {
		idleTTL = time.Minute
	}
	return &RateLimiter{
		visitors:  make(map[string]*visitor),
		blocked:   make(map[string]time.Time),
		requests:  burst,
		per:       per,
		blockTime: blockTime,
		idleTTL:   idleTTL,
		log:       logger,
		now:       time.Now,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		r.mu.Lock()

		now := r.now()
		r.sweep(now)

		if blockedUntil, found := r.blocked[ip]; found {
			if now.Before(blockedUntil) {
				r.mu.Unlock()
				r.reject(w, req, ip, blockedUntil.Sub(now))
				return
			}
			delete(r.blocked, ip)
			delete(r.visitors, ip)
		}

		v, exists := r.visitors[ip]
		if !exists {
			v = &visitor{limiter: rate.NewLimiter(rate.Every(r.per), r.requests)}
			r.visitors[ip] = v
		}
		v.lastSeen = now

		if !v.limiter.AllowN(now, 1) {
			r.blocked[ip] = now.Add(r.blockTime)
			r.mu.Unlock()
			r.reject(w, req, ip, r.blockTime)
			return
		}

		r.mu.Unlock()
		next.ServeHTTP(w, req)
	})
}

// Tracked reports how many clients currently hold state in the limiter.
func (r *RateLimiter) Tracked() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.visitors) + len(r.blocked)
}

// sweep expects r.mu to be held. It runs at most once per idleTTL.
func (r *RateLimiter) sweep(now time.Time) {
	if now.Sub(r.lastSweep) < r.idleTTL {
		return
	}
	r.lastSweep = now

	for ip, v := range r.visitors {
		if now.Sub(v.lastSeen) >= r.idleTTL {
			delete(r.visitors, ip)
		}
	}
	for ip, until := range r.blocked {
		if !now.Before(until) {
			delete(r.blocked, ip)
		}
	}
}

func (r *RateLimiter) reject(w http.ResponseWriter, req *http.Request, ip string, retryAfter time.Duration) {
	r.log.Warn("RateLimiter.Limit blocked request",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(req.Context())),
		zap.String(constvars.LoggingRemoteAddrKey, ip),
		zap.Duration("retry_after", retryAfter),
	)
	seconds := int(math.Ceil(retryAfter.Seconds()))
	if seconds < 1 {
		seconds = 1
	}
	w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(seconds))
	utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(errors.New("rate limit exceeded for "+ip)))
}
