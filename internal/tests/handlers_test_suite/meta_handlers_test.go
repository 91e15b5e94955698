package handlers_test_suite

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/BlackSenju/techhive-automation/internal/http/handlers"
)

func TestHealth(t *testing.T) {
	env := setup(&fakeCatalog{})
	defer env.teardown()

	w := env.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, err := decode[handler.HealthResponse](w)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.Timestamp)
	assert.True(t, resp.ShopifyConfigured)
}

func TestHealthUnconfigured(t *testing.T) {
	env := setup(&fakeCatalog{unconfigured: true})
	defer env.teardown()

	w := env.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, err := decode[handler.HealthResponse](w)
	require.NoError(t, err)
	assert.False(t, resp.ShopifyConfigured)
}

func TestIndexDescribesEndpointsAndSchedule(t *testing.T) {
	env := setup(&fakeCatalog{})
	defer env.teardown()

	w := env.do(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp, err := decode[map[string]any](w)
	require.NoError(t, err)
	assert.Contains(t, resp, "endpoints")
	assert.Contains(t, resp, "schedule")

	endpoints, ok := resp["endpoints"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, endpoints, "POST /api/automation/run-all")
}

func TestRequestIDHeaderSet(t *testing.T) {
	env := setup(&fakeCatalog{})
	defer env.teardown()

	w := env.do(http.MethodGet, "/health", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}
