package platform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchAll_ArrayPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != ProductsPath {
			t.Errorf("Expected path %s, got %s", ProductsPath, r.URL.Path)
		}
		if r.Header.Get(RequestIDHeader) == "" {
			t.Error("Expected a request ID header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "name": "Chair", "price": 50, "description": "x"},
			{"id": 2, "name": "Table", "price": 120.5, "description": "y"}
		]`))
	}))
	defer server.Close()

	client := NewCatalogClient(server.URL)
	products, err := client.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(products) != 2 {
		t.Fatalf("Expected 2 products, got %d", len(products))
	}
	if products[0].ID != "1" || products[0].Name != "Chair" || products[0].Price != 50 {
		t.Errorf("Unexpected first product: %+v", products[0])
	}
	if products[1].ID != "2" || products[1].Price != 120.5 {
		t.Errorf("Unexpected second product: %+v", products[1])
	}
}

func TestFetchAll_EnvelopePayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products": [{"id": "sku-9", "title": "Lamp", "price": 15, "description": "z"}]}`))
	}))
	defer server.Close()

	client := NewCatalogClient(server.URL)
	products, err := client.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(products) != 1 {
		t.Fatalf("Expected 1 product, got %d", len(products))
	}
	// String IDs and "title" naming are both accepted
	if products[0].ID != "sku-9" || products[0].Name != "Lamp" {
		t.Errorf("Unexpected product: %+v", products[0])
	}
}

func TestFetchAll_EmptyCatalog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewCatalogClient(server.URL)
	products, err := client.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(products) != 0 {
		t.Errorf("Expected empty catalog, got %d products", len(products))
	}
}

func TestFetchAll_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewCatalogClient(server.URL)
	_, err := client.FetchAll(context.Background())
	if err == nil {
		t.Fatal("Expected error for HTTP 500, got nil")
	}
}

func TestFetchAll_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products": "not-a-list"`))
	}))
	defer server.Close()

	client := NewCatalogClient(server.URL)
	_, err := client.FetchAll(context.Background())
	if err == nil {
		t.Fatal("Expected error for malformed payload, got nil")
	}
}

func TestFetchAll_ContextCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewCatalogClient(server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.FetchAll(ctx)
	if err == nil {
		t.Fatal("Expected error for cancelled context, got nil")
	}
}

func TestNewCatalogClient_TrimsTrailingSlash(t *testing.T) {
	client := NewCatalogClient("https://shop.example.com/api/")
	if client.baseURL != "https://shop.example.com/api" {
		t.Errorf("Expected trailing slash trimmed, got %q", client.baseURL)
	}
}

func TestSetTimeout(t *testing.T) {
	client := NewCatalogClient("https://shop.example.com")

	client.SetTimeout(5 * time.Second)
	if client.httpClient.Timeout != 5*time.Second {
		t.Errorf("Expected timeout 5s, got %v", client.httpClient.Timeout)
	}

	client.SetTimeout(0) // Should fall back to default
	if client.httpClient.Timeout != DefaultRequestTimeout {
		t.Errorf("Expected default timeout %v, got %v", DefaultRequestTimeout, client.httpClient.Timeout)
	}
}
