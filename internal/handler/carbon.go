package handler

import (
	"net/http"

	"ecotrack/internal/config"
	"ecotrack/internal/middleware"
	"ecotrack/internal/model"
	"ecotrack/internal/service"

	"github.com/gin-gonic/gin"
)

// CarbonHandler serves carbon footprint logs.
type CarbonHandler struct {
	carbon *service.CarbonService
}

func NewCarbonHandler(carbon *service.CarbonService) *CarbonHandler {
	return &CarbonHandler{carbon: carbon}
}

// List handles GET /api/carbon
func (h *CarbonHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	footprints, err := h.carbon.List(c.Request.Context(), user.ID, limitQuery(c, config.DefaultCarbonLimit))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewListResponse(len(footprints), footprints))
}

// Create handles POST /api/carbon
func (h *CarbonHandler) Create(c *gin.Context) {
	var req model.CreateFootprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	user := middleware.CurrentUser(c)
	footprint, err := h.carbon.Create(c.Request.Context(), user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("footprint recorded", footprint))
}
