package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// GlobalRateLimit caps every route at MaxRequests per second per IP.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	return httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)
}

// AssessRateLimit is the stricter limiter mounted on the assessment route.
func (m *Middlewares) AssessRateLimit() func(next http.Handler) http.Handler {
	app := m.InternalConfig.App
	per := time.Minute
	if app.AssessRequestsPerMinute > 0 {
		per = time.Minute / time.Duration(app.AssessRequestsPerMinute)
	}
	limiter := NewRateLimiter(m.Log, app.AssessBurst, per, time.Duration(app.AssessBlockTimeInSeconds)*time.Second)
	return limiter.Limit
}
