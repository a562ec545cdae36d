package server

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"websim2api/internal/core"
	"websim2api/internal/metrics"

	"github.com/gin-gonic/gin"
)

// setStreamingHeaders sets streaming response HTTP headers
func setStreamingHeaders(c *gin.Context) {
	c.Header(core.HeaderContentType, core.ContentTypeEventStream)
	c.Header(core.HeaderCacheControl, core.CacheControlNoCache)
	c.Header(core.HeaderConnection, core.ConnectionKeepAlive)
}

// writeSSEData writes SSE format data
func writeSSEData(w io.Writer, data []byte) (int, error) {
	return fmt.Fprintf(w, "%s%s\n\n", core.StreamChunkPrefix, string(data))
}

// writeSSEDone writes SSE end marker
func writeSSEDone(w io.Writer) (int, error) {
	return fmt.Fprintf(w, "%s%s\n\n", core.StreamChunkPrefix, core.StreamChunkDoneMessage)
}

// respondWithOpenAIError returns OpenAI format error response
func respondWithOpenAIError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// trackPerformanceWithMetrics records performance metrics
func trackPerformanceWithMetrics(m *metrics.MetricsService, startTime time.Time) func() {
	return func() {
		duration := time.Since(startTime)
		m.RecordHTTPRequest(duration)
	}
}

// recordRequestResultWithMetrics records request result
func recordRequestResultWithMetrics(m *metrics.MetricsService, success bool, startTime time.Time, model string) {
	if success {
		metrics.RecordSuccessWithMetrics(m, startTime, model)
	} else {
		metrics.RecordFailureWithMetrics(m, startTime, model)
	}
}

// withPanicRecoveryWithMetrics wraps handler with panic recovery
func withPanicRecoveryWithMetrics(
	c *gin.Context,
	m *metrics.MetricsService,
	startTime time.Time,
	resp **http.Response,
	logger core.Logger,
) func() {
	return func() {
		if r := recover(); r != nil {
			logger.Error("Panic in handler: %v", r)

			if resp != nil && *resp != nil && (*resp).Body != nil {
				_ = (*resp).Body.Close()
			}

			metrics.RecordFailureWithMetrics(m, startTime, "")

			respondWithOpenAIError(c, http.StatusInternalServerError, "internal server error")
		}
	}
}

// extractUpstreamErrorMessage reads the upstream response body and returns an appropriate error message.
// 4xx responses get the original upstream message (transparent to the client).
// 5xx responses get a generic message (no internal details leaked).
func extractUpstreamErrorMessage(resp *http.Response, logger core.Logger) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, core.MaxResponseBodySize))
	logger.Error("Websim API Error: status=%d, body=%s", resp.StatusCode, string(body))

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		if len(body) > 0 {
			return string(body)
		}
		return fmt.Sprintf("upstream client error (status %d)", resp.StatusCode)
	}
	return "upstream service error"
}
