package routes

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// walkRoutes flattens the mounted tree into "METHOD pattern" strings.
func walkRoutes(t *testing.T, r chi.Router) map[string]bool {
	t.Helper()
	seen := map[string]bool{}
	err := chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	})
	require.NoError(t, err)
	return seen
}

func TestRegisterAPIRouteContract(t *testing.T) {
	r := chi.NewRouter()
	RegisterAPI(r)
	seen := walkRoutes(t, r)

	for _, want := range []string{
		"POST /api/login",
		"POST /api/register",
		"GET /api/profile",
		"GET /api/cart/{identification}/",
		"POST /api/cart/{identification}/add",
		"DELETE /api/cart/{identification}/remove/{productCode}",
		"POST /api/cart/{identification}/checkout",
		"GET /api/purchase-orders/",
		"POST /api/purchase-orders/",
		"PATCH /api/purchase-orders/{code}/receive",
		"GET /api/products",
		"GET /api/products/{code}",
	} {
		assert.True(t, seen[want], "missing route %s", want)
	}

	// Receiving must be a partial state change, never a create.
	assert.False(t, seen["POST /api/purchase-orders/{code}/receive"])
	// Old plural cart prefix must not linger.
	for route := range seen {
		assert.NotContains(t, route, "/api/carts/")
	}
}
