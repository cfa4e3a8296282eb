package handler

import (
	"net/http"

	"ecotrack/internal/middleware"
	"ecotrack/internal/model"
	"ecotrack/internal/service"

	"github.com/gin-gonic/gin"
)

// CommunityHandler serves posts and comments.
type CommunityHandler struct {
	community *service.CommunityService
}

func NewCommunityHandler(community *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{community: community}
}

// ListPosts handles GET /api/community/posts
func (h *CommunityHandler) ListPosts(c *gin.Context) {
	posts, err := h.community.ListPosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewListResponse(len(posts), posts))
}

// CreatePost handles POST /api/community/posts
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	user := middleware.CurrentUser(c)
	post, err := h.community.CreatePost(c.Request.Context(), user, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("post created", post))
}

// LikePost handles PUT /api/community/posts/:id/like
func (h *CommunityHandler) LikePost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	post, err := h.community.LikePost(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("post liked", post))
}

// DeletePost handles DELETE /api/community/posts/:id
func (h *CommunityHandler) DeletePost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)
	if err := h.community.DeletePost(c.Request.Context(), id, user.ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("post deleted", gin.H{}))
}

// ListComments handles GET /api/community/posts/:id/comments
func (h *CommunityHandler) ListComments(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	comments, err := h.community.ListComments(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewListResponse(len(comments), comments))
}

// AddComment handles POST /api/community/posts/:id/comments
func (h *CommunityHandler) AddComment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	user := middleware.CurrentUser(c)
	comment, err := h.community.AddComment(c.Request.Context(), id, user, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("comment added", comment))
}
