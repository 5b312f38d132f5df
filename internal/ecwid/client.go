// Package ecwid provides the HTTP client for the Ecwid catalog REST API.
package ecwid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sheetcut_backend/platform/apperr"
	"sheetcut_backend/platform/logger"
)

// MarkerAttribute flags catalog entries created by this system. Reconciliation
// only ever deletes products carrying this attribute with value "true".
const MarkerAttribute = "customPriceOneOff"

// Client is the HTTP client for the Ecwid product API of a single store.
type Client struct {
	apiBase    string
	storeID    string
	token      string
	httpClient *http.Client
	log        *logger.Logger
}

// Attribute is a product attribute name/value pair.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// NewProduct is the create-product request payload.
type NewProduct struct {
	Name            string      `json:"name"`
	Price           float64     `json:"price"`
	SKU             string      `json:"sku"`
	Enabled         bool        `json:"enabled"`
	ShowOnFrontpage int         `json:"showOnFrontpage"`
	TrackQuantity   bool        `json:"trackQuantity"`
	Description     string      `json:"description"`
	Attributes      []Attribute `json:"attributes"`
}

type createResponse struct {
	ID int64 `json:"id"`
}

// New creates a new Ecwid API client. apiBase is the versioned API root
// without the store ID, e.g. https://app.ecwid.com/api/v3.
func New(apiBase, storeID, token string, log *logger.Logger) *Client {
	return &Client{
		apiBase:    strings.TrimRight(apiBase, "/"),
		storeID:    storeID,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// CreateProduct creates a product in the remote catalog and returns the
// server-assigned product ID. A non-2xx response surfaces as an upstream
// error carrying the remote status and body text.
func (c *Client) CreateProduct(ctx context.Context, product NewProduct) (int64, error) {
	body, err := json.Marshal(product)
	if err != nil {
		return 0, fmt.Errorf("marshal product payload: %w", err)
	}

	reqURL := fmt.Sprintf("%s/%s/products", c.apiBase, url.PathEscape(c.storeID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewBuffer(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("create product request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		data, _ := io.ReadAll(resp.Body)
		return 0, apperr.Upstream(fmt.Sprintf("Create failed: %d %s", resp.StatusCode, strings.TrimSpace(string(data))))
	}

	var created createResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return 0, fmt.Errorf("decode create response: %w", err)
	}

	c.log.Info("product created", "product_id", created.ID, "sku", product.SKU)
	return created.ID, nil
}

// DeleteProduct removes a product from the remote catalog by ID.
func (c *Client) DeleteProduct(ctx context.Context, productID string) error {
	reqURL := fmt.Sprintf("%s/%s/products/%s", c.apiBase, url.PathEscape(c.storeID), url.PathEscape(productID))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete product request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete failed: %d %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	return nil
}
