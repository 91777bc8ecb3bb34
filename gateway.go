package clubadmin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/easyvoley/clubadmin/internal/audit"
)

// errorEnvelope is the API's error payload. Only msg is contractual; bodies
// that fail to parse fall back to a status-based message.
type errorEnvelope struct {
	Msg string `json:"msg"`
}

// do is the single gateway every API call funnels through: bearer header
// when a token is held, JSON in and out, metrics, audit, and the 401
// forced-logout special case. out may be nil for calls whose response body
// is irrelevant.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	return c.doRequest(ctx, method, endpoint, body, out, false)
}

// doSessionless is do without the bearer header and without the 401 session
// special case. Login and Register use it: a 401 there means bad
// credentials, not an expired session.
func (c *Client) doSessionless(ctx context.Context, method, endpoint string, body, out any) error {
	return c.doRequest(ctx, method, endpoint, body, out, true)
}

func (c *Client) doRequest(ctx context.Context, method, endpoint string, body, out any, sessionless bool) error {
	if c.closed.Load() {
		return ErrClientClosed
	}

	requestID := requestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.config.API.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.API.UserAgent)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !sessionless {
		if token := c.sessions.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.Inc(MetricTransportError)
		c.emitRequestAudit(ctx, requestID, method, endpoint, 0, false, err.Error())
		c.logRequest(method, endpoint, requestID, 0, elapsed, err)
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.Inc(MetricTransportError)
		c.emitRequestAudit(ctx, requestID, method, endpoint, resp.StatusCode, false, err.Error())
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	c.metrics.Observe(MetricRequestLatency, elapsed)
	c.logRequest(method, endpoint, requestID, resp.StatusCode, elapsed, nil)

	if resp.StatusCode == http.StatusUnauthorized && !sessionless {
		c.metrics.Inc(MetricRequestUnauthorized)
		c.forceLogout(ctx, requestID)
		c.emitRequestAudit(ctx, requestID, method, endpoint, resp.StatusCode, false, "unauthorized")
		return fmt.Errorf("%w: %s %s", ErrSessionExpired, method, endpoint)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.metrics.Inc(MetricRequestSuccess)
		c.emitRequestAudit(ctx, requestID, method, endpoint, resp.StatusCode, true, "")
		if out != nil && len(data) > 0 {
			if err := json.Unmarshal(data, out); err != nil {
				return fmt.Errorf("%w: decode response: %v", ErrRequestFailed, err)
			}
		}
		return nil
	}

	c.metrics.Inc(MetricRequestFailure)

	var envelope errorEnvelope
	_ = json.Unmarshal(data, &envelope)
	apiErr := newAPIError(resp.StatusCode, http.StatusText(resp.StatusCode), envelope.Msg, requestID)

	c.emitRequestAudit(ctx, requestID, method, endpoint, resp.StatusCode, false, apiErr.Message)
	return apiErr
}

// forceLogout drops the session after a 401. The expiry hook fires only
// when a session was actually dropped, so a 401 racing in after logout
// stays silent.
func (c *Client) forceLogout(ctx context.Context, requestID string) {
	dropped, err := c.sessions.Clear(ctx)
	if err != nil && c.logger != nil {
		c.logger.WithError(err).Warn("clearing session storage after 401")
	}
	if !dropped {
		return
	}

	c.metrics.Inc(MetricForcedLogout)
	c.emitAudit(ctx, audit.EventForcedLogout, false, "unauthorized", func(e *AuditEvent) {
		e.RequestID = requestID
	})
	if c.logger != nil {
		c.logger.Warn("session expired, forced logout")
	}
	if c.onSessionExpired != nil {
		c.onSessionExpired()
	}
}

func (c *Client) emitRequestAudit(ctx context.Context, requestID, method, endpoint string, status int, success bool, errMsg string) {
	c.emitAudit(ctx, audit.EventRequest, success, errMsg, func(e *AuditEvent) {
		e.RequestID = requestID
		e.Method = method
		e.Endpoint = endpoint
		e.Status = status
	})
}

func (c *Client) logRequest(method, endpoint, requestID string, status int, elapsed time.Duration, err error) {
	if c.logger == nil {
		return
	}

	fields := logrus.Fields{
		"method":     method,
		"endpoint":   endpoint,
		"request_id": requestID,
		"status":     status,
		"elapsed":    elapsed,
	}
	if err != nil {
		c.logger.WithFields(fields).WithError(err).Debug("api request failed")
		return
	}
	c.logger.WithFields(fields).Debug("api request")
}

// Get issues an authenticated GET.
func (c *Client) Get(ctx context.Context, endpoint string, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

// Post issues an authenticated POST with a JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPost, endpoint, body, out)
}

// Put issues an authenticated PUT with a JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPut, endpoint, body, out)
}

// Delete issues an authenticated DELETE.
func (c *Client) Delete(ctx context.Context, endpoint string, out any) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, out)
}
