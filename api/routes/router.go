package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/paymitra/storefront-backend/api/controllers"
	cartcontrollers "github.com/paymitra/storefront-backend/api/controllers/cart"
	"github.com/paymitra/storefront-backend/api/middleware"
	"github.com/paymitra/storefront-backend/internal/cart"
	"github.com/paymitra/storefront-backend/internal/catalog"
	"github.com/paymitra/storefront-backend/pkg/config"
	"github.com/paymitra/storefront-backend/pkg/db"
	"github.com/paymitra/storefront-backend/pkg/logger"
	"github.com/paymitra/storefront-backend/pkg/metrics"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          db.Pinger
	HTTPMetrics *metrics.HTTPMetrics
	Catalog     catalog.Service
	Cart        cart.Service
	MetricsPage http.Handler
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(deps.Logger),
		middleware.RequestID(deps.Logger),
		middleware.Logging(deps.Logger),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(deps.Config))
		r.Get("/ready", controllers.HealthReady(deps.Config, deps.DB, deps.Logger))
	})

	metricsPage := deps.MetricsPage
	if metricsPage == nil {
		metricsPage = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsPage)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(deps.Catalog, deps.Logger))
			r.Get("/{id}", controllers.ProductDetail(deps.Catalog, deps.Logger))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.Session(deps.Logger))
			r.Get("/", cartcontrollers.Fetch(deps.Cart, deps.Logger))
			r.Delete("/", cartcontrollers.Clear(deps.Cart, deps.Logger))
			r.Post("/items", cartcontrollers.AddItem(deps.Cart, deps.Logger))
			r.Patch("/items/{id}", cartcontrollers.UpdateItem(deps.Cart, deps.Logger))
			r.Delete("/items/{id}", cartcontrollers.RemoveItem(deps.Cart, deps.Logger))
			r.Post("/coupon", cartcontrollers.ApplyCoupon(deps.Cart, deps.Logger))
		})
	})

	return r
}
