package routes

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/anagarciahdz/grocerhub-backend/api/controllers"
	"github.com/anagarciahdz/grocerhub-backend/api/middleware"
	"github.com/anagarciahdz/grocerhub-backend/api/responses"
	customersvc "github.com/anagarciahdz/grocerhub-backend/internal/customers"
	dashboardsvc "github.com/anagarciahdz/grocerhub-backend/internal/dashboard"
	inventorysvc "github.com/anagarciahdz/grocerhub-backend/internal/inventory"
	ordersvc "github.com/anagarciahdz/grocerhub-backend/internal/orders"
	productsvc "github.com/anagarciahdz/grocerhub-backend/internal/products"
	uomsvc "github.com/anagarciahdz/grocerhub-backend/internal/uom"
	"github.com/anagarciahdz/grocerhub-backend/pkg/db"
	pkgerrors "github.com/anagarciahdz/grocerhub-backend/pkg/errors"
	"github.com/anagarciahdz/grocerhub-backend/pkg/logger"
	"github.com/anagarciahdz/grocerhub-backend/pkg/metrics"
	"github.com/anagarciahdz/grocerhub-backend/web"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Logger    *logger.Logger
	DB        db.Pinger
	Metrics   *metrics.HTTPMetrics
	Gatherer  prometheus.Gatherer
	Renderer  *web.Renderer
	UOMRepo   *uomsvc.Repository
	Products  productsvc.Service
	Customers customersvc.Service
	Orders    ordersvc.Service
	Dashboard dashboardsvc.Service
	Inventory inventorysvc.Service
}

func NewRouter(deps Deps) http.Handler {
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(middleware.CORS())

	r.Get("/health", controllers.Health(deps.DB, logg))
	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/uom", controllers.ListUOM(deps.UOMRepo, logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(deps.Products, logg))
			r.Post("/", controllers.CreateProduct(deps.Products, logg))
			r.Get("/popular", controllers.PopularProducts(deps.Dashboard, logg))
			r.Get("/{id}", controllers.GetProduct(deps.Products, logg))
			r.Put("/{id}", controllers.UpdateProduct(deps.Products, logg))
			r.Delete("/{id}", controllers.DeleteProduct(deps.Products, logg))
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", controllers.ListCustomers(deps.Customers, logg))
			r.Post("/", controllers.CreateCustomer(deps.Customers, logg))
			r.Get("/{id}", controllers.GetCustomer(deps.Customers, logg))
			r.Put("/{id}", controllers.UpdateCustomer(deps.Customers, logg))
			r.Delete("/{id}", controllers.DeleteCustomer(deps.Customers, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(deps.Orders, logg))
			r.Post("/", controllers.CreateOrder(deps.Orders, logg))
			r.Get("/today", controllers.TodayOrders(deps.Dashboard, logg))
			r.Get("/recent", controllers.RecentOrders(deps.Dashboard, logg))
			r.Get("/{id}", controllers.GetOrder(deps.Orders, logg))
		})

		r.Get("/dashboard/stats", controllers.DashboardStats(deps.Dashboard, logg))

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/summary", controllers.InventorySummary(deps.Inventory, logg))
			r.Get("/low-stock", controllers.LowStockProducts(deps.Inventory, logg))
			r.Post("/update-stock", controllers.UpdateStock(deps.Inventory, logg))
		})
	})

	if deps.Renderer != nil {
		rd := deps.Renderer
		r.Get("/", rd.Page("index"))
		r.Get("/inventory", rd.Page("inventory"))
		r.Get("/products", rd.Page("products"))
		r.Get("/products/add", rd.Page("add_product"))
		r.Get("/products/edit/{id}", rd.PageWithID("edit_product", pathID("id")))
		r.Get("/customers", rd.Page("customers"))
		r.Get("/customers/add", rd.Page("add_customer"))
		r.Get("/customers/edit/{id}", rd.PageWithID("edit_customer", pathID("id")))
		r.Get("/orders", rd.Page("orders"))
		r.Get("/orders/create", rd.Page("create_order"))
		r.Get("/orders/{id}", rd.PageWithID("order_details", pathID("id")))
		r.Handle("/static/*", web.Static())
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if strings.HasPrefix(req.URL.Path, "/api") || deps.Renderer == nil {
			responses.WriteError(req.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeNotFound, "route not found"))
			return
		}
		deps.Renderer.NotFound(w, req)
	})

	return r
}

func pathID(param string) func(*http.Request) string {
	return func(req *http.Request) string {
		return chi.URLParam(req, param)
	}
}
