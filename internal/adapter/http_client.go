package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/models"
)

// HTTPClientConfig configures the HTTP server adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPServerAdapter builds a [ServerAdapter] speaking the JSON-over-HTTP
// sync protocol. The timeout bounds the whole round trip; when it fires the
// call is reported as a transport failure.
func NewHTTPServerAdapter(cfg HTTPClientConfig, log *logger.Logger) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli, logger: log}
}

func (h *httpServerAdapter) Sync(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	if req.Changes == nil {
		req.Changes = map[string][]models.ChangeItem{}
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/sync")
	if err != nil {
		// resty errors here are connection-level: DNS, refused, timeout.
		return models.SyncResponse{}, fmt.Errorf("%w: sync request: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncResponse{}, err
	}

	var sr models.SyncResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return models.SyncResponse{}, fmt.Errorf("%w: decode sync response: %v", ErrTransport, err)
	}

	return sr, nil
}

func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return fmt.Errorf("%w: ping request: %v", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	if code >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", ErrTransport, code, body)
	}

	return fmt.Errorf("%w: http %d: %s", ErrBadRequest, code, body)
}
