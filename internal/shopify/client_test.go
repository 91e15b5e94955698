package shopify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BlackSenju/techhive-automation/internal/models"
)

// testClient points a configured client at a local test server.
func testClient(srv *httptest.Server) *Client {
	c := NewClient("teststore", "shpat_token")
	c.baseURL = srv.URL
	c.httpClient = srv.Client()
	return c
}

func TestListProducts(t *testing.T) {
	var gotPath, gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		gotToken = r.Header.Get("X-Shopify-Access-Token")
		json.NewEncoder(w).Encode(map[string]any{"products": []models.Product{
			{ID: 1, Title: "Mouse"},
			{ID: 2, Title: "Keyboard", Variants: []models.Variant{{ID: 20, InventoryQuantity: 3}}},
		}})
	}))
	defer srv.Close()

	products, err := testClient(srv).ListProducts(context.Background(), 250)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "/products.json?limit=250", gotPath)
	assert.Equal(t, "shpat_token", gotToken)
	assert.Equal(t, 3, products[1].Variants[0].InventoryQuantity)
}

func TestListProductsClampsLimit(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		json.NewEncoder(w).Encode(map[string]any{"products": []models.Product{}})
	}))
	defer srv.Close()

	_, err := testClient(srv).ListProducts(context.Background(), 9999)
	require.NoError(t, err)
	assert.Equal(t, "/products.json?limit=250", gotPath)
}

func TestGetProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/42.json", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"product": models.Product{ID: 42, Title: "Webcam"}})
	}))
	defer srv.Close()

	product, err := testClient(srv).GetProduct(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), product.ID)
	assert.Equal(t, "Webcam", product.Title)
}

func TestUpdateProductSendsEnvelope(t *testing.T) {
	var body map[string]map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(map[string]any{"product": models.Product{ID: 42, Title: "New Title"}})
	}))
	defer srv.Close()

	updated, err := testClient(srv).UpdateProduct(context.Background(), 42, map[string]any{"title": "New Title"})
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)

	require.Contains(t, body, "product")
	assert.Equal(t, float64(42), body["product"]["id"])
	assert.Equal(t, "New Title", body["product"]["title"])
}

func TestUpstreamErrorSurfacesAsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errors":"Not Found"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).GetProduct(context.Background(), 42)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Not Found", apiErr.Message)
}

func TestStructuredUpstreamErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors":{"title":["can't be blank"]}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).UpdateProduct(context.Background(), 1, map[string]any{"title": ""})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Contains(t, apiErr.Message, "can't be blank")
}

func TestUnconfiguredDegradedMode(t *testing.T) {
	c := NewClient("", "")
	assert.False(t, c.Configured())

	products, err := c.ListProducts(context.Background(), 250)
	require.NoError(t, err)
	assert.Empty(t, products)

	_, err = c.GetProduct(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = c.UpdateProduct(context.Background(), 1, map[string]any{"title": "x"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
