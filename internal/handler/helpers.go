package handler

import (
	"errors"
	"net/http"
	"strconv"

	"ecotrack/internal/model"
	"ecotrack/pkg/generic"
	"ecotrack/pkg/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// idParam parses the :id path segment, answering 400 on malformed input.
func idParam(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := util.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("invalid id", ""))
		return primitive.NilObjectID, false
	}
	return id, true
}

// limitQuery reads ?limit=, falling back to def when absent or unusable.
func limitQuery(c *gin.Context, def int64) int64 {
	raw := c.Query("limit")
	if raw == "" {
		return def
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// respondError maps service errors onto the response envelope. The error is
// attached to the gin context so the request logger records it; clients only
// see an opaque message on 500.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	if errors.Is(err, generic.ErrNotFound) {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("resource not found", ""))
		return
	}
	c.JSON(http.StatusInternalServerError, model.NewErrorResponse("internal server error", ""))
}
