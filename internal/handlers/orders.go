package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skyport/internal/middleware"
	"skyport/internal/models"
	"skyport/internal/validation"
)

// Orders handlers

// CreateOrder - POST /api/orders
// The order owner is always the authenticated user; the payload cannot
// assign the order to anyone else.
func (h *Handlers) CreateOrder(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.services.Orders.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// ListOrders - GET /api/orders
// Returns only the authenticated user's orders, newest first, paginated.
func (h *Handlers) ListOrders(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, pageSize, err := validation.ParsePagination(
		c.Query("page"), c.Query("page_size"),
		h.cfg.OrderPageSize, h.cfg.OrderMaxPageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	filter := models.OrderFilter{
		UserID:   userID,
		Page:     page,
		PageSize: pageSize,
	}

	if date := c.Query("created_date"); date != "" {
		parsed, err := validation.ParseDate("created_date", date)
		if err != nil {
			respondError(c, err)
			return
		}
		filter.CreatedDate = &parsed
	}

	orders, err := h.services.Orders.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrder - GET /api/orders/:id
// Another user's order is reported as not found, not forbidden.
func (h *Handlers) GetOrder(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.services.Orders.Get(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}
