package handler

import (
	"net/http"

	"ecotrack/internal/model"
	"ecotrack/internal/service"

	"github.com/gin-gonic/gin"
)

// EcoLocationHandler serves the eco-friendly locations map.
type EcoLocationHandler struct {
	locations *service.EcoLocationService
}

func NewEcoLocationHandler(locations *service.EcoLocationService) *EcoLocationHandler {
	return &EcoLocationHandler{locations: locations}
}

// List handles GET /api/eco-locations
func (h *EcoLocationHandler) List(c *gin.Context) {
	locations, err := h.locations.List(c.Request.Context(), c.Query("category"), c.Query("city"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewListResponse(len(locations), locations))
}

// Get handles GET /api/eco-locations/:id
func (h *EcoLocationHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	location, err := h.locations.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("", location))
}

// Create handles POST /api/eco-locations (admin)
func (h *EcoLocationHandler) Create(c *gin.Context) {
	var req model.CreateEcoLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	location, err := h.locations.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("location created", location))
}

// Update handles PUT /api/eco-locations/:id (admin)
func (h *EcoLocationHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req model.UpdateEcoLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	location, err := h.locations.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("location updated", location))
}

// Delete handles DELETE /api/eco-locations/:id (admin)
func (h *EcoLocationHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.locations.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("location deleted", gin.H{}))
}
