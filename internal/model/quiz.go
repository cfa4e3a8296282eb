package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Answer is embedded in a quiz question.
type Answer struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AnswerText string             `bson:"answerText" json:"answer_text"`
	IsCorrect  bool               `bson:"isCorrect" json:"is_correct"`
	OrderIndex int                `bson:"orderIndex" json:"order_index"`
}

type QuizQuestion struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	QuestionText string             `bson:"questionText" json:"questionText"`
	Difficulty   string             `bson:"difficulty" json:"difficulty"` // easy, medium, hard
	Category     string             `bson:"category" json:"category"`
	Points       int                `bson:"points" json:"points"`
	Explanation  string             `bson:"explanation,omitempty" json:"explanation,omitempty"`
	Answers      []Answer           `bson:"answers" json:"answers"`
	CreatedBy    primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (q *QuizQuestion) GetID() primitive.ObjectID   { return q.ID }
func (q *QuizQuestion) SetID(id primitive.ObjectID) { q.ID = id }

// QuestionResponse is the client-facing question shape. The is_active flag
// is only populated on the admin listing.
type QuestionResponse struct {
	ID           string   `json:"id"`
	QuestionText string   `json:"question_text"`
	Difficulty   string   `json:"difficulty"`
	Category     string   `json:"category"`
	Points       int      `json:"points"`
	Explanation  string   `json:"explanation,omitempty"`
	IsActive     *bool    `json:"is_active,omitempty"`
	Answers      []Answer `json:"answers"`
}

func (q *QuizQuestion) ToResponse(includeActive bool) QuestionResponse {
	resp := QuestionResponse{
		ID:           q.ID.Hex(),
		QuestionText: q.QuestionText,
		Difficulty:   q.Difficulty,
		Category:     q.Category,
		Points:       q.Points,
		Explanation:  q.Explanation,
		Answers:      q.Answers,
	}
	if includeActive {
		active := q.IsActive
		resp.IsActive = &active
	}
	return resp
}

// AttemptAnswer snapshots a single answered question.
type AttemptAnswer struct {
	QuestionID primitive.ObjectID `bson:"questionId" json:"questionId"`
	AnswerID   primitive.ObjectID `bson:"answerId" json:"answerId"`
	IsCorrect  bool               `bson:"isCorrect" json:"isCorrect"`
	AnsweredAt time.Time          `bson:"answeredAt" json:"answeredAt"`
}

// QuizAttempt is immutable once created.
type QuizAttempt struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	Score          int                `bson:"score" json:"score"`
	TotalQuestions int                `bson:"totalQuestions" json:"totalQuestions"`
	CorrectAnswers int                `bson:"correctAnswers" json:"correctAnswers"`
	TimeTaken      int                `bson:"timeTaken,omitempty" json:"timeTaken,omitempty"` // seconds
	Answers        []AttemptAnswer    `bson:"answers" json:"answers"`
	CompletedAt    time.Time          `bson:"completedAt" json:"completedAt"`
}

func (a *QuizAttempt) GetID() primitive.ObjectID   { return a.ID }
func (a *QuizAttempt) SetID(id primitive.ObjectID) { a.ID = id }

// AttemptSummary is the shape the dashboard consumes.
type AttemptSummary struct {
	ID             string    `json:"id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CompletedAt    time.Time `json:"completed_at"`
}

func (a *QuizAttempt) ToSummary() AttemptSummary {
	return AttemptSummary{
		ID:             a.ID.Hex(),
		Score:          a.CorrectAnswers,
		TotalQuestions: a.TotalQuestions,
		CompletedAt:    a.CompletedAt,
	}
}

type AnswerInput struct {
	AnswerText string `json:"answer_text" binding:"required"`
	IsCorrect  bool   `json:"is_correct"`
	OrderIndex *int   `json:"order_index"`
}

type CreateQuestionRequest struct {
	QuestionText string        `json:"questionText" binding:"required"`
	Difficulty   string        `json:"difficulty" binding:"required,difficulty"`
	Category     string        `json:"category" binding:"required"`
	Points       int           `json:"points"`
	Explanation  string        `json:"explanation"`
	Answers      []AnswerInput `json:"answers" binding:"required,min=1,dive"`
}

type UpdateQuestionRequest struct {
	QuestionText string        `json:"questionText"`
	Difficulty   string        `json:"difficulty" binding:"omitempty,difficulty"`
	Category     string        `json:"category"`
	Points       int           `json:"points"`
	Explanation  *string       `json:"explanation"`
	IsActive     *bool         `json:"isActive"`
	Answers      []AnswerInput `json:"answers" binding:"omitempty,dive"`
}

type AttemptAnswerInput struct {
	QuestionID string `json:"questionId" binding:"required"`
	AnswerID   string `json:"answerId" binding:"required"`
	IsCorrect  bool   `json:"isCorrect"`
}

type SubmitAttemptRequest struct {
	Score          int                  `json:"score"`
	TotalQuestions int                  `json:"totalQuestions" binding:"required,min=1"`
	CorrectAnswers int                  `json:"correctAnswers"`
	TimeTaken      int                  `json:"timeTaken"`
	Answers        []AttemptAnswerInput `json:"answers" binding:"omitempty,dive"`
}
