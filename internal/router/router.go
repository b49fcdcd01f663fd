package router

import (
	"time"

	"github.com/Pasiduchamod/CompareShop/internal/catalog"
	"github.com/Pasiduchamod/CompareShop/internal/config"
	"github.com/Pasiduchamod/CompareShop/internal/handler"
	"github.com/Pasiduchamod/CompareShop/internal/middleware"
	"github.com/Pasiduchamod/CompareShop/internal/repository"
	"github.com/Pasiduchamod/CompareShop/internal/service"
	"github.com/Pasiduchamod/CompareShop/internal/worker"

	"github.com/gin-gonic/gin"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Store/Saver ← KVStore
func New(cfg *config.Config, store *catalog.Store, kv repository.KVStore, saver *worker.Saver, currencySvc service.CurrencyService) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Services ─────────────────────────────────────────────────────────────
	catalogSvc := service.NewCatalogService(store, saver)
	comparisonSvc := service.NewComparisonService(store)

	// ── Handlers ─────────────────────────────────────────────────────────────
	categoriesH := handler.NewCategoriesHandler(catalogSvc)
	productsH := handler.NewProductsHandler(catalogSvc)
	comparisonH := handler.NewComparisonHandler(comparisonSvc, currencySvc)
	billH := handler.NewBillHandler(comparisonSvc, currencySvc)
	pricingH := handler.NewPricingHandler(catalogSvc, currencySvc)
	currencyH := handler.NewCurrencyHandler(currencySvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(kv))

	v1 := r.Group("/v1")
	{
		categories := v1.Group("/categories")
		{
			categories.GET("", categoriesH.List)
			categories.POST("", categoriesH.Create)
			categories.PUT("/:id", categoriesH.Rename)
			categories.DELETE("/:id", categoriesH.Delete)
			categories.PATCH("/:id/pin", categoriesH.TogglePin)

			categories.GET("/:id/products", productsH.List)
			categories.POST("/:id/products", productsH.Create)
			categories.PUT("/:id/products/:productId", productsH.Update)
			categories.DELETE("/:id/products/:productId", productsH.Delete)
			categories.GET("/:id/best-value", productsH.BestValue)
			categories.GET("/:id/comparison", comparisonH.Compare)
		}

		selection := v1.Group("/selection")
		{
			selection.GET("", comparisonH.Selection)
			selection.POST("/toggle", comparisonH.Toggle)
			selection.POST("/clear", comparisonH.Clear)
		}

		bill := v1.Group("/bill")
		{
			bill.GET("/products", billH.Products)
			bill.POST("/total", billH.Total)
			bill.POST("/pdf", billH.PDF)
		}

		v1.POST("/pricing/preview", pricingH.Preview)

		v1.GET("/currencies", currencyH.List)
		v1.GET("/currency", currencyH.Current)
		v1.PUT("/currency", currencyH.Set)
	}

	return r
}
