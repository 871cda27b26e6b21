package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skyport/internal/models"
)

// Routes handlers

// CreateRoute - POST /api/routes
func (h *Handlers) CreateRoute(c *gin.Context) {
	var req models.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	route, err := h.services.Routes.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, route)
}

// ListRoutes - GET /api/routes
func (h *Handlers) ListRoutes(c *gin.Context) {
	filter := models.RouteFilter{
		Source:      c.Query("source"),
		Destination: c.Query("destination"),
	}

	routes, err := h.services.Routes.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, routes)
}

// GetRoute - GET /api/routes/:id
func (h *Handlers) GetRoute(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	route, err := h.services.Routes.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, route)
}

// UpdateRoute - PUT /api/routes/:id
func (h *Handlers) UpdateRoute(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	route, err := h.services.Routes.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, route)
}

// DeleteRoute - DELETE /api/routes/:id
func (h *Handlers) DeleteRoute(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Routes.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
