package service

import (
	"context"
	"time"

	"ecotrack/internal/model"
	"ecotrack/internal/repository"
	"ecotrack/pkg/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuizService handles quiz questions and attempts.
type QuizService struct {
	questions repository.IQuizQuestionRepository
	attempts  repository.IQuizAttemptRepository
}

func NewQuizService(questions repository.IQuizQuestionRepository, attempts repository.IQuizAttemptRepository) *QuizService {
	return &QuizService{questions: questions, attempts: attempts}
}

func (s *QuizService) ListActiveQuestions(ctx context.Context, limit int64) ([]*model.QuizQuestion, error) {
	return s.questions.FindActive(ctx, limit)
}

func (s *QuizService) ListAllQuestions(ctx context.Context) ([]*model.QuizQuestion, error) {
	return s.questions.FindAll(ctx)
}

func (s *QuizService) CreateQuestion(ctx context.Context, creator primitive.ObjectID, req *model.CreateQuestionRequest) (*model.QuizQuestion, error) {
	now := time.Now()
	points := req.Points
	if points == 0 {
		points = 10
	}
	question := &model.QuizQuestion{
		QuestionText: req.QuestionText,
		Difficulty:   req.Difficulty,
		Category:     req.Category,
		Points:       points,
		Explanation:  req.Explanation,
		Answers:      buildAnswers(req.Answers),
		CreatedBy:    creator,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuizService) UpdateQuestion(ctx context.Context, id primitive.ObjectID, req *model.UpdateQuestionRequest) (*model.QuizQuestion, error) {
	set := bson.M{"updatedAt": time.Now()}
	if req.QuestionText != "" {
		set["questionText"] = req.QuestionText
	}
	if req.Difficulty != "" {
		set["difficulty"] = req.Difficulty
	}
	if req.Category != "" {
		set["category"] = req.Category
	}
	if req.Points != 0 {
		set["points"] = req.Points
	}
	if req.Explanation != nil {
		set["explanation"] = *req.Explanation
	}
	if req.IsActive != nil {
		set["isActive"] = *req.IsActive
	}
	if req.Answers != nil {
		set["answers"] = buildAnswers(req.Answers)
	}
	return s.questions.UpdateByID(ctx, id, bson.M{"$set": set})
}

func (s *QuizService) DeleteQuestion(ctx context.Context, id primitive.ObjectID) error {
	return s.questions.DeleteByID(ctx, id)
}

// SubmitAttempt records an immutable attempt for the current user.
func (s *QuizService) SubmitAttempt(ctx context.Context, userID primitive.ObjectID, req *model.SubmitAttemptRequest) (*model.QuizAttempt, error) {
	now := time.Now()
	answers := make([]model.AttemptAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		questionID, err := util.ParseObjectID(a.QuestionID)
		if err != nil {
			return nil, err
		}
		answerID, err := util.ParseObjectID(a.AnswerID)
		if err != nil {
			return nil, err
		}
		answers = append(answers, model.AttemptAnswer{
			QuestionID: questionID,
			AnswerID:   answerID,
			IsCorrect:  a.IsCorrect,
			AnsweredAt: now,
		})
	}
	attempt := &model.QuizAttempt{
		UserID:         userID,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		CorrectAnswers: req.CorrectAnswers,
		TimeTaken:      req.TimeTaken,
		Answers:        answers,
		CompletedAt:    now,
	}
	if err := s.attempts.Create(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

func (s *QuizService) ListAttempts(ctx context.Context, userID primitive.ObjectID, limit int64) ([]*model.QuizAttempt, error) {
	return s.attempts.FindByUser(ctx, userID, limit)
}

// buildAnswers assigns each embedded answer an id and defaults the order
// index to its position in the request.
func buildAnswers(inputs []model.AnswerInput) []model.Answer {
	answers := make([]model.Answer, len(inputs))
	for i, a := range inputs {
		order := i
		if a.OrderIndex != nil {
			order = *a.OrderIndex
		}
		answers[i] = model.Answer{
			ID:         primitive.NewObjectID(),
			AnswerText: a.AnswerText,
			IsCorrect:  a.IsCorrect,
			OrderIndex: order,
		}
	}
	return answers
}
