package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skyport/internal/models"
	"skyport/internal/validation"
)

// Flights handlers

// CreateFlight - POST /api/flights
func (h *Handlers) CreateFlight(c *gin.Context) {
	var req models.CreateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.services.Flights.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, flight)
}

// ListFlights - GET /api/flights
// Supports ?source=, ?destination= (case-insensitive substrings) and
// ?departure_date=YYYY-MM-DD. Filters combine with AND.
func (h *Handlers) ListFlights(c *gin.Context) {
	filter := models.FlightFilter{
		Source:      c.Query("source"),
		Destination: c.Query("destination"),
	}

	if date := c.Query("departure_date"); date != "" {
		parsed, err := validation.ParseDate("departure_date", date)
		if err != nil {
			respondError(c, err)
			return
		}
		filter.DepartureDate = &parsed
	}

	flights, err := h.services.Flights.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, flights)
}

// SearchFlights - GET /api/flights/search
// Full-text fuzzy search over airport and city names.
func (h *Handlers) SearchFlights(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}

	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	if size < 1 || size > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "size must be between 1 and 100"})
		return
	}

	flights, err := h.services.Flights.Search(c.Request.Context(), query, size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, flights)
}

// GetFlight - GET /api/flights/:id
func (h *Handlers) GetFlight(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	flight, err := h.services.Flights.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, flight)
}

// UpdateFlight - PUT /api/flights/:id
func (h *Handlers) UpdateFlight(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.CreateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.services.Flights.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, flight)
}

// DeleteFlight - DELETE /api/flights/:id
func (h *Handlers) DeleteFlight(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Flights.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
