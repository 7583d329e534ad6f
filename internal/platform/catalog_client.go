package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shopgrid/catalog-browser/internal/model"
)

// Timeout constants
const (
	DefaultRequestTimeout = 30 * time.Second
)

// Endpoint paths and headers
const (
	ProductsPath    = "/products"
	RequestIDHeader = "X-Request-ID"
)

// Payload limits
const (
	MaxPayloadBytes = 8 << 20
)

// flexibleID accepts either a JSON string or a JSON number and normalizes
// it to its decimal string form, keeping the model transport-agnostic.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	if strings.HasPrefix(strings.TrimSpace(string(data)), `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexibleID(n.String())
	return nil
}

// productDTO mirrors one catalog item on the wire. Some deployments name
// the display text "title" instead of "name"; both are accepted.
type productDTO struct {
	ID          flexibleID `json:"id"`
	Name        string     `json:"name"`
	Title       string     `json:"title"`
	Price       float64    `json:"price"`
	Description string     `json:"description"`
}

// catalogEnvelope is the wrapped payload variant: {"products": [...]}
type catalogEnvelope struct {
	Products []productDTO `json:"products"`
}

// CatalogClient fetches the product catalog from a JSON HTTP endpoint.
// It implements browse.Fetcher.
type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewCatalogClient creates a new catalog client for the given base URL
func NewCatalogClient(baseURL string) *CatalogClient {
	return &CatalogClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultRequestTimeout,
		},
	}
}

// SetBaseURL points the client at a different catalog service
func (c *CatalogClient) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimRight(baseURL, "/")
}

// SetTimeout sets the timeout for catalog requests
func (c *CatalogClient) SetTimeout(timeout time.Duration) {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	c.httpClient.Timeout = timeout
}

// FetchAll retrieves the full product catalog
func (c *CatalogClient) FetchAll(ctx context.Context) ([]model.Product, error) {
	requestID := uuid.NewString()
	endpoint := c.baseURL + ProductsPath
	log.Printf("Catalog fetch %s: GET %s", requestID, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request %s: %w", requestID, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request %s: %w", requestID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("catalog request %s: unexpected status %s", requestID, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("catalog request %s: read body: %w", requestID, err)
	}

	dtos, err := decodeCatalog(body)
	if err != nil {
		return nil, fmt.Errorf("catalog request %s: %w", requestID, err)
	}

	products := make([]model.Product, 0, len(dtos))
	for _, dto := range dtos {
		products = append(products, dto.toModel())
	}
	return products, nil
}

// decodeCatalog accepts either a bare JSON array of products or an
// envelope object with a "products" field
func decodeCatalog(body []byte) ([]productDTO, error) {
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		var dtos []productDTO
		if err := json.Unmarshal(body, &dtos); err != nil {
			return nil, fmt.Errorf("decode catalog array: %w", err)
		}
		return dtos, nil
	}

	var envelope catalogEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode catalog envelope: %w", err)
	}
	return envelope.Products, nil
}

// toModel maps a wire DTO to the domain product
func (dto productDTO) toModel() model.Product {
	name := dto.Name
	if name == "" {
		name = dto.Title
	}
	return model.Product{
		ID:          string(dto.ID),
		Name:        name,
		Price:       dto.Price,
		Description: dto.Description,
	}
}
