package handler

import (
	"net/http"

	"ecotrack/internal/middleware"
	"ecotrack/internal/model"
	"ecotrack/internal/service"
	"ecotrack/pkg/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlantingHandler serves planting areas and planted trees.
type PlantingHandler struct {
	planting *service.PlantingService
}

func NewPlantingHandler(planting *service.PlantingService) *PlantingHandler {
	return &PlantingHandler{planting: planting}
}

// ListAreas handles GET /api/planting/areas
func (h *PlantingHandler) ListAreas(c *gin.Context) {
	areas, err := h.planting.ListAreas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewListResponse(len(areas), areas))
}

// GetArea handles GET /api/planting/areas/:id
func (h *PlantingHandler) GetArea(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	area, err := h.planting.GetArea(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("", area))
}

// CreateArea handles POST /api/planting/areas (admin)
func (h *PlantingHandler) CreateArea(c *gin.Context) {
	var req model.CreatePlantingAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	area, err := h.planting.CreateArea(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("area created", area))
}

// UpdateArea handles PUT /api/planting/areas/:id (admin)
func (h *PlantingHandler) UpdateArea(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req model.UpdatePlantingAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	area, err := h.planting.UpdateArea(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("area updated", area))
}

// DeleteArea handles DELETE /api/planting/areas/:id (admin)
func (h *PlantingHandler) DeleteArea(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.planting.DeleteArea(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("area deleted", gin.H{}))
}

// ListTrees handles GET /api/planting/trees
func (h *PlantingHandler) ListTrees(c *gin.Context) {
	areaID := primitive.NilObjectID
	if raw := c.Query("plantingAreaId"); raw != "" {
		parsed, err := util.ParseObjectID(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse("invalid planting area id", ""))
			return
		}
		areaID = parsed
	}

	trees, err := h.planting.ListTrees(c.Request.Context(), areaID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewListResponse(len(trees), trees))
}

// ListMyTrees handles GET /api/planting/trees/user
func (h *PlantingHandler) ListMyTrees(c *gin.Context) {
	user := middleware.CurrentUser(c)
	trees, err := h.planting.ListUserTrees(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewListResponse(len(trees), trees))
}

// PlantTree handles POST /api/planting/trees
func (h *PlantingHandler) PlantTree(c *gin.Context) {
	var req model.PlantTreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	if !util.IsValidObjectID(req.PlantingAreaID) {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("invalid planting area id", ""))
		return
	}

	user := middleware.CurrentUser(c)
	tree, err := h.planting.PlantTree(c.Request.Context(), user, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("tree planted", tree))
}
