package handler

import (
	"net/http"

	"ecotrack/internal/config"
	"ecotrack/internal/middleware"
	"ecotrack/internal/model"
	"ecotrack/internal/service"

	"github.com/gin-gonic/gin"
)

// QuizHandler serves quiz questions and attempts.
type QuizHandler struct {
	quiz *service.QuizService
}

func NewQuizHandler(quiz *service.QuizService) *QuizHandler {
	return &QuizHandler{quiz: quiz}
}

// ListQuestions handles GET /api/quiz/questions
func (h *QuizHandler) ListQuestions(c *gin.Context) {
	questions, err := h.quiz.ListActiveQuestions(c.Request.Context(), limitQuery(c, config.DefaultQuestionLimit))
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]model.QuestionResponse, len(questions))
	for i, q := range questions {
		responses[i] = q.ToResponse(false)
	}
	c.JSON(http.StatusOK, model.NewListResponse(len(responses), responses))
}

// ListAllQuestions handles GET /api/quiz/questions/all (admin)
func (h *QuizHandler) ListAllQuestions(c *gin.Context) {
	questions, err := h.quiz.ListAllQuestions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	responses := make([]model.QuestionResponse, len(questions))
	for i, q := range questions {
		responses[i] = q.ToResponse(true)
	}
	c.JSON(http.StatusOK, model.NewListResponse(len(responses), responses))
}

// CreateQuestion handles POST /api/quiz/questions (admin)
func (h *QuizHandler) CreateQuestion(c *gin.Context) {
	var req model.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	user := middleware.CurrentUser(c)
	question, err := h.quiz.CreateQuestion(c.Request.Context(), user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("question created", question.ToResponse(true)))
}

// UpdateQuestion handles PUT /api/quiz/questions/:id (admin)
func (h *QuizHandler) UpdateQuestion(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req model.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	question, err := h.quiz.UpdateQuestion(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("question updated", question.ToResponse(true)))
}

// DeleteQuestion handles DELETE /api/quiz/questions/:id (admin)
func (h *QuizHandler) DeleteQuestion(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.quiz.DeleteQuestion(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("question deleted", gin.H{}))
}

// SubmitAttempt handles POST /api/quiz/attempts
func (h *QuizHandler) SubmitAttempt(c *gin.Context) {
	var req model.SubmitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	user := middleware.CurrentUser(c)
	attempt, err := h.quiz.SubmitAttempt(c.Request.Context(), user.ID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("attempt recorded", attempt.ToSummary()))
}

// ListAttempts handles GET /api/quiz/attempts
func (h *QuizHandler) ListAttempts(c *gin.Context) {
	user := middleware.CurrentUser(c)
	attempts, err := h.quiz.ListAttempts(c.Request.Context(), user.ID, limitQuery(c, config.DefaultAttemptLimit))
	if err != nil {
		respondError(c, err)
		return
	}
	summaries := make([]model.AttemptSummary, len(attempts))
	for i, a := range attempts {
		summaries[i] = a.ToSummary()
	}
	c.JSON(http.StatusOK, model.NewListResponse(len(summaries), summaries))
}
