package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/stylesphere/storefront/internal/domain/checkout"
	"github.com/stylesphere/storefront/internal/domain/shared"
	"github.com/stylesphere/storefront/internal/infrastructure/config"
)

// maxResponseSize is the maximum allowed response size from the order API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// ErrUnavailable indicates the order API could not be reached
var ErrUnavailable = errors.New("orderapi: service unavailable")

// Client talks to the remote order service over HTTP. It implements
// checkout.OrderCreator and checkout.OrderFetcher
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new order API client
func NewClient(cfg config.OrderAPIConfig, logger *zap.Logger) (*Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return nil, errors.New("orderapi: base URL is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("orderapi: invalid base URL: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.Named("orderapi"),
	}, nil
}

// GetProduct retrieves a product snapshot by id
func (c *Client) GetProduct(ctx context.Context, productID string) (*checkout.Product, error) {
	if productID == "" {
		return nil, shared.ErrNotFound
	}

	body, err := c.doRequest(ctx, http.MethodGet, "/products/"+url.PathEscape(productID), nil)
	if err != nil {
		return nil, err
	}

	// The order service wraps success bodies the same way it wraps errors:
	// {"product": {...}} here, {"order": {...}} below, {"error": "..."} on
	// rejection
	var envelope struct {
		Product checkout.Product `json:"product"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("orderapi: failed to decode product: %w", err)
	}
	if envelope.Product.ID == "" {
		return nil, errors.New("orderapi: response carried no product")
	}

	return &envelope.Product, nil
}

// CreateOrder submits an order to the remote order service
func (c *Client) CreateOrder(ctx context.Context, req checkout.OrderRequest) (*checkout.Order, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("orderapi: failed to encode order request: %w", err)
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/orders", payload)
	if err != nil {
		return nil, err
	}

	return decodeOrder(body)
}

// GetOrder retrieves a previously placed order by id
func (c *Client) GetOrder(ctx context.Context, orderID string) (*checkout.Order, error) {
	if orderID == "" {
		return nil, shared.ErrNotFound
	}

	body, err := c.doRequest(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderID), nil)
	if err != nil {
		return nil, err
	}

	return decodeOrder(body)
}

// decodeOrder unwraps the {"order": Order} envelope. An order without an id
// is rejected rather than passed on, since everything downstream (the
// confirmation URL, the confirmation fetch) hangs off the server-issued id
func decodeOrder(body []byte) (*checkout.Order, error) {
	var envelope struct {
		Order checkout.Order `json:"order"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("orderapi: failed to decode order: %w", err)
	}
	if envelope.Order.ID == "" {
		return nil, errors.New("orderapi: response carried no order")
	}
	return &envelope.Order, nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("orderapi: failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("orderapi: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, c.errorFromResponse(method, path, resp.StatusCode, body)
	}

	return body, nil
}

// errorFromResponse maps an error response to a domain error. The order
// service reports rejections as {"error": "..."} with the human-readable
// reason, which surfaces verbatim to the customer
func (c *Client) errorFromResponse(method, path string, status int, body []byte) error {
	if status == http.StatusNotFound {
		return shared.ErrNotFound
	}

	var remote struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &remote); err == nil && remote.Error != "" {
		c.logger.Warn("order API rejected request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.String("reason", remote.Error),
		)
		return shared.NewDomainError("ORDER_REJECTED", remote.Error)
	}

	c.logger.Error("order API request failed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
	)
	return fmt.Errorf("%w: HTTP %d", ErrUnavailable, status)
}

var (
	_ checkout.OrderCreator = (*Client)(nil)
	_ checkout.OrderFetcher = (*Client)(nil)
)
