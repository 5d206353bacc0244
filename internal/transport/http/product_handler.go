package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/get_product"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_products"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/search_products"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/create_product"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/delete_product"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/update_product"
)

// ProductHandler adapts HTTP requests to the product use cases.
type ProductHandler struct {
	create *create_product.Interactor
	update *update_product.Interactor
	remove *delete_product.Interactor
	get    *get_product.Query
	list   *list_products.Query
	search *search_products.Query
}

// NewProductHandler creates a new product handler.
func NewProductHandler(
	create *create_product.Interactor,
	update *update_product.Interactor,
	remove *delete_product.Interactor,
	get *get_product.Query,
	list *list_products.Query,
	search *search_products.Query,
) *ProductHandler {
	return &ProductHandler{
		create: create,
		update: update,
		remove: remove,
		get:    get,
		list:   list,
		search: search,
	}
}

// List handles GET requests for a paginated product page.
func (h *ProductHandler) List(c *gin.Context) {
	page, err := h.list.Execute(c.Request.Context(), getQueryOptions(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Create handles POST requests to create a product.
func (h *ProductHandler) Create(c *gin.Context) {
	var req create_product.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.create.Execute(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// Get handles GET requests for a single product.
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Update handles PUT requests to update a product.
func (h *ProductHandler) Update(c *gin.Context) {
	var req update_product.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.update.Execute(c.Request.Context(), &req, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// Delete handles DELETE requests for a product.
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Search handles GET requests for a starts-with product search.
func (h *ProductHandler) Search(c *gin.Context) {
	field, text := getSearchParams(c)

	products, err := h.search.Execute(c.Request.Context(), field, text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}
