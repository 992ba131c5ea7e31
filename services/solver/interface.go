package solver

import (
	"context"
	"net/http"
	"time"

	"timegrid/config"
	"timegrid/models"

	"go.uber.org/zap"
)

// Client is the outbound boundary to the external schedule solver.
type Client interface {
	GenerateSchedule(ctx context.Context, req models.SolverRequest) (*models.SolverResult, error)
}

// HTTPClient implements Client against the solver's REST endpoint.
type HTTPClient struct {
	BaseURL string
	HTTP    *http.Client
	Logger  *zap.Logger
}

// NewHTTPClient constructs a solver client from the application config. The
// HTTP timeout is the whole-call budget; a solve that runs past it is
// reported as a timeout, never a partial result.
func NewHTTPClient(logger *zap.Logger) *HTTPClient {
	timeout := time.Duration(config.AppConfig.SolverTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HTTPClient{
		BaseURL: config.AppConfig.SolverURL,
		HTTP:    &http.Client{Timeout: timeout},
		Logger:  logger,
	}
}
