package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"syscall"

	"timegrid/models"

	"go.uber.org/zap"
)

const generatePath = "/api/generate-schedule"

// GenerateSchedule posts the normalized request to the solver and returns the
// normalized result. Failure modes are kept distinct so callers can tell
// "service down" from "service too slow" from "service rejected the request".
func (c *HTTPClient) GenerateSchedule(ctx context.Context, req models.SolverRequest) (*models.SolverResult, error) {
	endpoint := c.BaseURL + generatePath

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal solver request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build solver request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.Logger.Debug("calling solver",
		zap.String("url", endpoint),
		zap.Int("subjects", len(req.Subjects)),
		zap.Int("rooms", len(req.Rooms)))

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, c.classifyTransportError(endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &StatusError{Status: 0, Message: fmt.Sprintf("failed to read solver response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.Logger.Warn("solver rejected request",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody))
		return nil, &StatusError{Status: resp.StatusCode, Message: string(respBody)}
	}

	return ParseResponse(respBody)
}

// classifyTransportError maps a client-side failure onto the upstream error
// taxonomy: refused connections, timeouts, and everything else.
func (c *HTTPClient) classifyTransportError(endpoint string, err error) error {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return &UnavailableError{URL: endpoint, Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &TimeoutError{URL: endpoint, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{URL: endpoint, Err: err}
	}

	return &StatusError{Status: 0, Message: err.Error()}
}
