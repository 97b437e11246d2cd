// Package kernel assembles the HTTP stack: the router, the middleware
// chain and the operational endpoints.
package kernel

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tiendahq/tienda/app/routes"
	"github.com/tiendahq/tienda/pkg/metrics"
	"github.com/tiendahq/tienda/pkg/middleware"
	"github.com/tiendahq/tienda/pkg/reqid"
	"github.com/tiendahq/tienda/pkg/response"
)

type HTTPKernel struct {
	mux chi.Router
}

// NewHTTPKernel builds the router with the full middleware chain and
// all routes mounted. Request ID comes first so every later stage logs
// with it; recovery sits inside metrics so panics still count.
func NewHTTPKernel() *HTTPKernel {
	mux := chi.NewRouter()

	mux.Use(reqid.Middleware())
	mux.Use(metrics.Middleware())
	mux.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	mux.Use(middleware.RateLimit(120, time.Minute))
	mux.Use(middleware.Recovery)
	mux.Use(middleware.Logger)

	routes.RegisterAPI(mux)

	mux.Get("/metrics", metrics.Handler())
	mux.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "ok"})
	})

	return &HTTPKernel{mux: mux}
}

func (k *HTTPKernel) Handler() http.Handler {
	return k.mux
}
