package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skyport/internal/models"
)

// Crew handlers

// CreateCrew - POST /api/crew
func (h *Handlers) CreateCrew(c *gin.Context) {
	var req models.CreateCrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.services.Crew.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// ListCrew - GET /api/crew
func (h *Handlers) ListCrew(c *gin.Context) {
	filter := models.CrewFilter{
		FirstName: c.Query("first_name"),
		LastName:  c.Query("last_name"),
	}

	members, err := h.services.Crew.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// GetCrew - GET /api/crew/:id
func (h *Handlers) GetCrew(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	member, err := h.services.Crew.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// UpdateCrew - PUT /api/crew/:id
func (h *Handlers) UpdateCrew(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.CreateCrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.services.Crew.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteCrew - DELETE /api/crew/:id
func (h *Handlers) DeleteCrew(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Crew.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
