// Package shopify is a thin authenticated client for the Shopify Admin REST
// API, covering only the product operations this service needs.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/BlackSenju/techhive-automation/internal/config"
	"github.com/BlackSenju/techhive-automation/internal/models"
)

// MaxPageSize is the largest page Shopify serves in one request. Fetches are
// capped to a single page of this size; products beyond it are not visited.
const MaxPageSize = 250

// ErrNotConfigured is returned by point lookups and writes when the store
// credentials are absent. List operations degrade to an empty result instead.
var ErrNotConfigured = errors.New("shopify credentials not configured")

// APIError carries the status and message of a non-2xx upstream response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("shopify API error (%d): %s", e.Status, e.Message)
}

// Catalog is the remote product catalog surface used by handlers and
// automation routines. Fakes implement it in tests.
type Catalog interface {
	Configured() bool
	ListProducts(ctx context.Context, limit int) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, fields map[string]any) (*models.Product, error)
}

// Client talks to a single store. Outbound calls are throttled to stay under
// Shopify's 2 req/s bucket; there is no retry and no client-imposed timeout.
type Client struct {
	storeDomain string
	accessToken string
	baseURL     string
	httpClient  *http.Client
	limiter     *rate.Limiter
}

func NewClient(storeDomain, accessToken string) *Client {
	c := &Client{
		storeDomain: storeDomain,
		accessToken: accessToken,
		httpClient:  &http.Client{},
		limiter:     rate.NewLimiter(2, 4),
	}
	if storeDomain != "" {
		c.baseURL = fmt.Sprintf("https://%s.myshopify.com/admin/api/%s", storeDomain, config.APIVersion)
	}
	return c
}

// Configured reports whether both store secrets are present.
func (c *Client) Configured() bool {
	return c.storeDomain != "" && c.accessToken != ""
}

// ListProducts fetches up to limit products from the first page of the
// catalog. Without credentials it returns an empty result, not an error.
func (c *Client) ListProducts(ctx context.Context, limit int) ([]models.Product, error) {
	if !c.Configured() {
		return nil, nil
	}
	if limit <= 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}

	var envelope struct {
		Products []models.Product `json:"products"`
	}
	path := fmt.Sprintf("/products.json?limit=%d", limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	var envelope struct {
		Product *models.Product `json:"product"`
	}
	path := fmt.Sprintf("/products/%d.json", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Product, nil
}

// UpdateProduct sends a partial update and returns the product as the
// catalog now sees it.
func (c *Client) UpdateProduct(ctx context.Context, id int64, fields map[string]any) (*models.Product, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	product := map[string]any{"id": id}
	for k, v := range fields {
		product[k] = v
	}
	payload := map[string]any{"product": product}

	var envelope struct {
		Product *models.Product `json:"product"`
	}
	path := fmt.Sprintf("/products/%d.json", id)
	if err := c.do(ctx, http.MethodPut, path, payload, &envelope); err != nil {
		return nil, err
	}
	return envelope.Product, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("shopify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: upstreamMessage(resp.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// upstreamMessage extracts the "errors" field of an error body; Shopify sends
// either a string or a structured object there.
func upstreamMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(raw) == 0 {
		return "unknown error"
	}

	var envelope struct {
		Errors json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Errors) > 0 {
		var s string
		if err := json.Unmarshal(envelope.Errors, &s); err == nil {
			return s
		}
		return string(envelope.Errors)
	}
	return string(raw)
}
