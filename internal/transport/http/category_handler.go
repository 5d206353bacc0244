package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/get_category"
	"github.com/light-bringer/inventory-service/internal/app/inventory/queries/list_categories"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/create_category"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/delete_category"
	"github.com/light-bringer/inventory-service/internal/app/inventory/usecases/update_category"
)

// CategoryHandler adapts HTTP requests to the category use cases.
type CategoryHandler struct {
	create *create_category.Interactor
	update *update_category.Interactor
	remove *delete_category.Interactor
	get    *get_category.Query
	list   *list_categories.Query
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(
	create *create_category.Interactor,
	update *update_category.Interactor,
	remove *delete_category.Interactor,
	get *get_category.Query,
	list *list_categories.Query,
) *CategoryHandler {
	return &CategoryHandler{
		create: create,
		update: update,
		remove: remove,
		get:    get,
		list:   list,
	}
}

// List handles GET requests for a paginated category page.
func (h *CategoryHandler) List(c *gin.Context) {
	page, err := h.list.Execute(c.Request.Context(), getQueryOptions(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Create handles POST requests to create a category.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req create_category.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.create.Execute(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// Get handles GET requests for a single category.
func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// Update handles PUT requests to update a category.
func (h *CategoryHandler) Update(c *gin.Context) {
	var req update_category.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.update.Execute(c.Request.Context(), &req, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// Delete handles DELETE requests for a category. Products referencing
// the category are not cascaded.
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
