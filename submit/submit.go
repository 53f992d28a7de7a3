// Package submit hands checked-out orders to fulfillment.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	models "storefront/model"
)

// Log records the order and reports success. It is the default when no
// fulfillment endpoint is configured.
type Log struct {
	Logger *zap.Logger
}

func (l Log) Submit(_ context.Context, order models.Order) error {
	l.Logger.Info("order submitted",
		zap.String("order_id", order.ID),
		zap.Int("line_items", len(order.Items)),
		zap.Int("total_items", order.TotalItems),
		zap.String("total", order.TotalPrice),
	)
	return nil
}

// HTTP posts the order as JSON to a fulfillment endpoint.
type HTTP struct {
	URL    string
	Client *http.Client
}

// NewHTTP returns an HTTP submitter with a bounded client timeout.
func NewHTTP(url string, timeout time.Duration) *HTTP {
	return &HTTP{URL: url, Client: &http.Client{Timeout: timeout}}
}

func (h *HTTP) Submit(ctx context.Context, order models.Order) error {
	body, err := json.Marshal(order)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("submit order %s: %w", order.ID, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("submit order %s: fulfillment returned %s", order.ID, resp.Status)
	}
	return nil
}
