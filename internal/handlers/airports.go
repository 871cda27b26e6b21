package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skyport/internal/models"
)

// Airports handlers

// CreateAirport - POST /api/airports
func (h *Handlers) CreateAirport(c *gin.Context) {
	var req models.CreateAirportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	airport, err := h.services.Airports.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, airport)
}

// ListAirports - GET /api/airports
func (h *Handlers) ListAirports(c *gin.Context) {
	filter := models.AirportFilter{Name: c.Query("name")}

	airports, err := h.services.Airports.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, airports)
}

// GetAirport - GET /api/airports/:id
func (h *Handlers) GetAirport(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	airport, err := h.services.Airports.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, airport)
}

// UpdateAirport - PUT /api/airports/:id
func (h *Handlers) UpdateAirport(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.CreateAirportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	airport, err := h.services.Airports.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, airport)
}

// DeleteAirport - DELETE /api/airports/:id
func (h *Handlers) DeleteAirport(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Airports.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
