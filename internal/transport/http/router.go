// Package http wires the gin router: middleware chain, routes and the
// request-parameter and error mapping around the application layer.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
)

const (
	apiPrefix      = "/api/v1"
	productsPath   = apiPrefix + "/products"
	categoriesPath = apiPrefix + "/categories"
)

// RouterOptions carries the dependencies of the HTTP surface.
type RouterOptions struct {
	Logger          *slog.Logger
	Verifier        contracts.TokenVerifier
	AllowedOrigins  func() []string
	ProductHandler  *ProductHandler
	CategoryHandler *CategoryHandler
}

// NewRouter builds the gin engine. CORS runs before authorization so
// preflights and forbidden origins are answered without touching the
// verifier; authorization runs before any handler logic.
func NewRouter(opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(opts.Logger), CORS(opts.AllowedOrigins))

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "The request you just made does not require authentication!")
	})

	authorized := Auth(opts.Verifier)

	router.GET("/readyz", authorized, func(c *gin.Context) {
		c.String(http.StatusOK, "This request has been authenticated successfully!")
	})

	api := router.Group(apiPrefix, authorized)

	products := api.Group("/products")
	products.GET("", opts.ProductHandler.List)
	products.POST("", opts.ProductHandler.Create)
	products.GET("/search", opts.ProductHandler.Search)
	products.GET("/:id", opts.ProductHandler.Get)
	products.PUT("/:id", opts.ProductHandler.Update)
	products.DELETE("/:id", opts.ProductHandler.Delete)

	categories := api.Group("/categories")
	categories.GET("", opts.CategoryHandler.List)
	categories.POST("", opts.CategoryHandler.Create)
	categories.GET("/:id", opts.CategoryHandler.Get)
	categories.PUT("/:id", opts.CategoryHandler.Update)
	categories.DELETE("/:id", opts.CategoryHandler.Delete)

	return router
}
