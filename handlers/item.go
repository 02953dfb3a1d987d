package handlers

import (
	"net/http"

	"shareit/middleware"
	"shareit/services/item"

	"github.com/gin-gonic/gin"
)

// ItemHandler serves item reads annotated with bookings.
type ItemHandler struct {
	Service  item.ItemService
	PageSize int
}

// NewItemHandler creates an ItemHandler.
func NewItemHandler(service item.ItemService, pageSize int) *ItemHandler {
	return &ItemHandler{Service: service, PageSize: pageSize}
}

// GetItem handles GET /items/:itemId.
func (h *ItemHandler) GetItem(c *gin.Context) {
	out, err := h.Service.GetItem(c.Request.Context(), c.Param("itemId"), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ListOwnerItems handles GET /items.
func (h *ItemHandler) ListOwnerItems(c *gin.Context) {
	page, err := pageFromQuery(c, h.PageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	out, err := h.Service.ListOwnerItems(c.Request.Context(), middleware.UserID(c), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
