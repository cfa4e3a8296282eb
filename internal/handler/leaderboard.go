package handler

import (
	"net/http"

	"ecotrack/internal/model"
	"ecotrack/internal/service"

	"github.com/gin-gonic/gin"
)

// LeaderboardHandler serves the ranked user list.
type LeaderboardHandler struct {
	leaderboard *service.LeaderboardService
}

func NewLeaderboardHandler(leaderboard *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard}
}

// Get handles GET /api/leaderboard. The count field reports the full user
// population, not the truncated page size.
func (h *LeaderboardHandler) Get(c *gin.Context) {
	entries, total, err := h.leaderboard.Rank(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewListResponse(total, entries))
}
