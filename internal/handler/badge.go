package handler

import (
	"net/http"

	"ecotrack/internal/middleware"
	"ecotrack/internal/model"
	"ecotrack/internal/service"

	"github.com/gin-gonic/gin"
)

// BadgeHandler serves badge definitions and the eligibility check.
type BadgeHandler struct {
	badges *service.BadgeService
}

func NewBadgeHandler(badges *service.BadgeService) *BadgeHandler {
	return &BadgeHandler{badges: badges}
}

// List handles GET /api/badges
func (h *BadgeHandler) List(c *gin.Context) {
	badges, err := h.badges.ListBadges(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewListResponse(len(badges), badges))
}

// ListMine handles GET /api/badges/user
func (h *BadgeHandler) ListMine(c *gin.Context) {
	user := middleware.CurrentUser(c)
	earned, err := h.badges.ListUserBadges(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewListResponse(len(earned), earned))
}

// Check handles POST /api/badges/check
func (h *BadgeHandler) Check(c *gin.Context) {
	user := middleware.CurrentUser(c)
	awarded, err := h.badges.Evaluate(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "badgesAwarded": awarded})
}

// Create handles POST /api/badges (admin)
func (h *BadgeHandler) Create(c *gin.Context) {
	var req model.CreateBadgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	badge, err := h.badges.CreateBadge(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("badge created", badge))
}
