package handler

import (
	"net/http"

	"ecotrack/internal/middleware"
	"ecotrack/internal/model"
	"ecotrack/internal/service"

	"github.com/gin-gonic/gin"
)

// EcoEventHandler serves community events.
type EcoEventHandler struct {
	events *service.EcoEventService
}

func NewEcoEventHandler(events *service.EcoEventService) *EcoEventHandler {
	return &EcoEventHandler{events: events}
}

// List handles GET /api/eco-events, active events only, soonest first.
func (h *EcoEventHandler) List(c *gin.Context) {
	events, err := h.events.ListActive(c.Request.Context(),
		c.Query("eventType"), c.Query("district"), c.Query("division"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewListResponse(len(events), events))
}

// ListAll handles GET /api/eco-events/all (admin)
func (h *EcoEventHandler) ListAll(c *gin.Context) {
	events, err := h.events.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewListResponse(len(events), events))
}

// Get handles GET /api/eco-events/:id
func (h *EcoEventHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	event, err := h.events.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("", event))
}

// Create handles POST /api/eco-events (admin)
func (h *EcoEventHandler) Create(c *gin.Context) {
	var req model.CreateEcoEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	user := middleware.CurrentUser(c)
	event, err := h.events.Create(c.Request.Context(), user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("event created", event))
}

// Update handles PUT /api/eco-events/:id (admin)
func (h *EcoEventHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req model.UpdateEcoEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	event, err := h.events.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("event updated", event))
}

// Delete handles DELETE /api/eco-events/:id (admin)
func (h *EcoEventHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.events.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("event deleted", gin.H{}))
}
