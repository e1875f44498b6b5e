package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/vominhduc11/dealerhub/internal/domain/model"
)

// ErrFeedEmpty indicates the catalog owner published no products yet.
var ErrFeedEmpty = errors.New("catalog feed empty")

// TooManyRequestsError represents rate limiting signal from the feed.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// Client exposes operations to query the external catalog feed.
type Client interface {
	Fetch(ctx context.Context) ([]model.Product, error)
}

// HTTPClient implements Client via HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// feedItem mirrors one product entry of the feed payload.
type feedItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SKU         string `json:"sku"`
	Category    string `json:"category"`
	UnitPrice   int64  `json:"unit_price"`
	Unit        string `json:"unit"`
	Stock       int64  `json:"stock"`
	MinOrderQty int64  `json:"min_order_qty"`
	PackSize    int64  `json:"pack_size"`
}

// NewHTTPClient creates HTTP catalog client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("catalog url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Fetch pulls the full product feed.
func (c *HTTPClient) Fetch(ctx context.Context) ([]model.Product, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/products")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var items []feedItem
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, err
		}
		products := make([]model.Product, 0, len(items))
		for _, item := range items {
			products = append(products, model.Product{
				ID:          item.ID,
				Name:        item.Name,
				SKU:         item.SKU,
				Category:    item.Category,
				UnitPrice:   item.UnitPrice,
				Unit:        item.Unit,
				Stock:       item.Stock,
				MinOrderQty: item.MinOrderQty,
				PackSize:    item.PackSize,
			})
		}
		return products, nil
	case http.StatusNoContent:
		return nil, ErrFeedEmpty
	case http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		return nil, TooManyRequestsError{RetryAfter: retryAfter}
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("catalog request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("catalog error: %s", resp.Status)
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}
