// ABOUTME: Logging round tripper for outbound HTTP requests
// ABOUTME: Redacts credential query parameters before URLs reach the log

package standard

import (
	"net/http"
	"net/url"
	"time"

	"ai-search-api/core/interfaces"
	"ai-search-api/pkg/requestid"
)

// redactedParams are query parameters never written to logs
var redactedParams = []string{"api_key", "key", "token"}

// LoggingRoundTripper implements http.RoundTripper with logging
type LoggingRoundTripper struct {
	Transport http.RoundTripper
	Logger    interfaces.Logger
}

// RoundTrip logs outgoing HTTP requests
func (t *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	reqID := requestid.FromContext(req.Context())
	target := RedactURL(req.URL)

	t.Logger.Debug("Outgoing HTTP request", map[string]interface{}{
		"request_id": reqID,
		"method":     req.Method,
		"url":        target,
	})

	resp, err := t.Transport.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		t.Logger.Error("Outgoing HTTP request failed", map[string]interface{}{
			"request_id": reqID,
			"method":     req.Method,
			"url":        target,
			"duration":   duration.String(),
			"error":      err.Error(),
		})
		return nil, err
	}

	t.Logger.Debug("Outgoing HTTP response", map[string]interface{}{
		"request_id": reqID,
		"method":     req.Method,
		"url":        target,
		"status":     resp.StatusCode,
		"duration":   duration.String(),
	})

	return resp, nil
}

// RedactURL renders u with credential query parameters masked
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	q := u.Query()
	changed := false
	for _, p := range redactedParams {
		if q.Has(p) {
			q.Set(p, "REDACTED")
			changed = true
		}
	}
	if !changed {
		return u.String()
	}
	clone := *u
	clone.RawQuery = q.Encode()
	return clone.String()
}
