package handler

import (
	"net/http"

	"ecotrack/internal/model"
	"ecotrack/internal/service"

	"github.com/gin-gonic/gin"
)

// BlogHandler serves blog posts.
type BlogHandler struct {
	blog *service.BlogService
}

func NewBlogHandler(blog *service.BlogService) *BlogHandler {
	return &BlogHandler{blog: blog}
}

// List handles GET /api/blog
func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.blog.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewListResponse(len(posts), posts))
}

// Get handles GET /api/blog/:id
func (h *BlogHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	post, err := h.blog.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("", post))
}

// Create handles POST /api/blog (admin)
func (h *BlogHandler) Create(c *gin.Context) {
	var req model.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	post, err := h.blog.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("post published", post))
}

// Update handles PUT /api/blog/:id (admin)
func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req model.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	post, err := h.blog.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("post updated", post))
}

// Delete handles DELETE /api/blog/:id (admin)
func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.blog.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("post deleted", gin.H{}))
}
