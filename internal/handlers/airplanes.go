package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skyport/internal/models"
)

// Airplane type handlers

// CreateAirplaneType - POST /api/airplane-types
func (h *Handlers) CreateAirplaneType(c *gin.Context) {
	var req models.CreateAirplaneTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	airplaneType, err := h.services.Airplanes.CreateType(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, airplaneType)
}

// ListAirplaneTypes - GET /api/airplane-types
func (h *Handlers) ListAirplaneTypes(c *gin.Context) {
	types, err := h.services.Airplanes.ListTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types)
}

// DeleteAirplaneType - DELETE /api/airplane-types/:id
func (h *Handlers) DeleteAirplaneType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Airplanes.DeleteType(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Airplane handlers

// CreateAirplane - POST /api/airplanes
func (h *Handlers) CreateAirplane(c *gin.Context) {
	var req models.CreateAirplaneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	airplane, err := h.services.Airplanes.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, airplane)
}

// ListAirplanes - GET /api/airplanes
// Supports ?name= as a case-insensitive substring filter.
func (h *Handlers) ListAirplanes(c *gin.Context) {
	filter := models.AirplaneFilter{Name: c.Query("name")}

	airplanes, err := h.services.Airplanes.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, airplanes)
}

// GetAirplane - GET /api/airplanes/:id
func (h *Handlers) GetAirplane(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	airplane, err := h.services.Airplanes.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, airplane)
}

// UpdateAirplane - PUT /api/airplanes/:id
func (h *Handlers) UpdateAirplane(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.CreateAirplaneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	airplane, err := h.services.Airplanes.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, airplane)
}

// DeleteAirplane - DELETE /api/airplanes/:id
func (h *Handlers) DeleteAirplane(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.services.Airplanes.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadAirplaneImage - POST /api/airplanes/:id/image
// Accepts a multipart form with an "image" file field.
func (h *Handlers) UploadAirplaneImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	airplane, err := h.services.Airplanes.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	path, err := h.images.SaveAirplaneImage(airplane.Name, file)
	if err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.services.Airplanes.AttachImage(c.Request.Context(), id, path)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}
