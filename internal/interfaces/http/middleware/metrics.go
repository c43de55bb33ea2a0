package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPRecorder receives per-request measurements. *metrics.Recorder
// implements it.
type HTTPRecorder interface {
	HTTPRequestStarted()
	HTTPRequestFinished(method, route string, status int, start time.Time, responseSize int)
}

// HTTPMetrics returns a Gin middleware that records request count, latency,
// response size and in-flight requests. A nil recorder disables it.
func HTTPMetrics(recorder HTTPRecorder, skipPaths ...string) gin.HandlerFunc {
	if recorder == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		recorder.HTTPRequestStarted()

		c.Next()

		recorder.HTTPRequestFinished(c.Request.Method, getRoutePattern(c), c.Writer.Status(), start, c.Writer.Size())
	}
}

// getRoutePattern returns the matched route (e.g. "/api/v1/submissions/render")
// rather than the raw path to keep label cardinality bounded.
func getRoutePattern(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unknown"
}
