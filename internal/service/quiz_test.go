package service

import (
	"context"
	"testing"

	"ecotrack/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newQuizService() (*QuizService, *fakeQuestionRepo, *fakeAttemptRepo) {
	questions := &fakeQuestionRepo{}
	attempts := &fakeAttemptRepo{}
	return NewQuizService(questions, attempts), questions, attempts
}

func TestCreateQuestionAnswerDefaults(t *testing.T) {
	svc, _, _ := newQuizService()
	explicit := 5
	question, err := svc.CreateQuestion(context.Background(), primitive.NewObjectID(), &model.CreateQuestionRequest{
		QuestionText: "Which river is the largest in Bangladesh?",
		Difficulty:   "easy",
		Category:     "geography",
		Answers: []model.AnswerInput{
			{AnswerText: "Padma", IsCorrect: true},
			{AnswerText: "Meghna"},
			{AnswerText: "Jamuna", OrderIndex: &explicit},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}

	if question.Points != 10 {
		t.Errorf("points = %d, want default 10", question.Points)
	}
	if !question.IsActive {
		t.Error("new question not active")
	}
	if len(question.Answers) != 3 {
		t.Fatalf("answers = %d, want 3", len(question.Answers))
	}
	for i, a := range question.Answers {
		if a.ID.IsZero() {
			t.Errorf("answer %d has no id", i)
		}
	}
	if question.Answers[0].OrderIndex != 0 || question.Answers[1].OrderIndex != 1 {
		t.Error("order index did not default to position")
	}
	if question.Answers[2].OrderIndex != 5 {
		t.Errorf("explicit order index = %d, want 5", question.Answers[2].OrderIndex)
	}
	if !question.Answers[0].IsCorrect || question.Answers[1].IsCorrect {
		t.Error("correctness flags not preserved")
	}
}

func TestUpdateQuestionTogglesActive(t *testing.T) {
	svc, questions, _ := newQuizService()
	question, err := svc.CreateQuestion(context.Background(), primitive.NewObjectID(), &model.CreateQuestionRequest{
		QuestionText: "q", Difficulty: "easy", Category: "c",
		Answers: []model.AnswerInput{{AnswerText: "a", IsCorrect: true}},
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}

	inactive := false
	if _, err := svc.UpdateQuestion(context.Background(), question.ID, &model.UpdateQuestionRequest{IsActive: &inactive}); err != nil {
		t.Fatalf("UpdateQuestion: %v", err)
	}

	active, err := questions.FindActive(context.Background(), 10)
	if err != nil {
		t.Fatalf("FindActive: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("deactivated question still listed as active")
	}
}

func TestSubmitAttemptRoundTrip(t *testing.T) {
	svc, _, attempts := newQuizService()
	userID := primitive.NewObjectID()
	questionID := primitive.NewObjectID()
	answerID := primitive.NewObjectID()

	attempt, err := svc.SubmitAttempt(context.Background(), userID, &model.SubmitAttemptRequest{
		Score:          80,
		TotalQuestions: 5,
		CorrectAnswers: 4,
		TimeTaken:      120,
		Answers: []model.AttemptAnswerInput{
			{QuestionID: questionID.Hex(), AnswerID: answerID.Hex(), IsCorrect: true},
		},
	})
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}

	if attempt.UserID != userID {
		t.Error("attempt not bound to submitting user")
	}
	if len(attempt.Answers) != 1 || attempt.Answers[0].QuestionID != questionID || attempt.Answers[0].AnswerID != answerID {
		t.Error("answer ids not parsed into the attempt")
	}
	if attempt.CompletedAt.IsZero() || attempt.Answers[0].AnsweredAt.IsZero() {
		t.Error("timestamps not stamped")
	}

	summary := attempt.ToSummary()
	if summary.Score != 4 {
		t.Errorf("summary score = %d, want correctAnswers 4", summary.Score)
	}
	if len(attempts.attempts) != 1 {
		t.Errorf("attempts stored = %d, want 1", len(attempts.attempts))
	}
}

func TestSubmitAttemptRejectsBadIDs(t *testing.T) {
	svc, _, attempts := newQuizService()
	_, err := svc.SubmitAttempt(context.Background(), primitive.NewObjectID(), &model.SubmitAttemptRequest{
		TotalQuestions: 1,
		Answers:        []model.AttemptAnswerInput{{QuestionID: "not-hex", AnswerID: "also-bad"}},
	})
	if err == nil {
		t.Fatal("SubmitAttempt accepted malformed ids")
	}
	if len(attempts.attempts) != 0 {
		t.Error("attempt stored despite malformed ids")
	}
}
