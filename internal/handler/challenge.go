package handler

import (
	"net/http"

	"ecotrack/internal/config"
	"ecotrack/internal/middleware"
	"ecotrack/internal/model"
	"ecotrack/internal/service"

	"github.com/gin-gonic/gin"
)

// ChallengeHandler serves daily challenges.
type ChallengeHandler struct {
	challenges *service.ChallengeService
}

func NewChallengeHandler(challenges *service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challenges: challenges}
}

// List handles GET /api/challenges
func (h *ChallengeHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	challenges, err := h.challenges.List(c.Request.Context(), user.ID, limitQuery(c, config.DefaultChallengeLimit))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewListResponse(len(challenges), challenges))
}

// Create handles POST /api/challenges
func (h *ChallengeHandler) Create(c *gin.Context) {
	var req model.CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	user := middleware.CurrentUser(c)
	challenge, err := h.challenges.Create(c.Request.Context(), user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("challenge created", challenge))
}

// Update handles PUT /api/challenges/:id
func (h *ChallengeHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req model.UpdateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	user := middleware.CurrentUser(c)
	challenge, err := h.challenges.SetCompleted(c.Request.Context(), id, user.ID, req.Completed)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("challenge updated", challenge))
}

// Delete handles DELETE /api/challenges/:id
func (h *ChallengeHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)
	if err := h.challenges.Delete(c.Request.Context(), id, user.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("challenge deleted", gin.H{}))
}
