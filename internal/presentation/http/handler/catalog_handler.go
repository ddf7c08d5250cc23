package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/restaurant-pos/internal/application/service"
	"github.com/sangkips/restaurant-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/restaurant-pos/internal/presentation/http/dto/response"
)

// CatalogHandler handles menu requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List handles listing menu items, optionally by category
func (h *CatalogHandler) List(c *gin.Context) {
	var req request.CatalogFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query: "+err.Error())
		return
	}

	view, err := h.catalogService.ListItems(req.Category)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu retrieved successfully", view)
}

// Categories returns the category filter list
func (h *CatalogHandler) Categories(c *gin.Context) {
	response.OK(c, "Categories retrieved successfully", h.catalogService.Categories())
}
