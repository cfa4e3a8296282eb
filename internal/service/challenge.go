package service

import (
	"context"
	"time"

	"ecotrack/internal/model"
	"ecotrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChallengeService handles daily challenges.
type ChallengeService struct {
	challenges repository.IChallengeRepository
}

func NewChallengeService(challenges repository.IChallengeRepository) *ChallengeService {
	return &ChallengeService{challenges: challenges}
}

func (s *ChallengeService) List(ctx context.Context, userID primitive.ObjectID, limit int64) ([]*model.DailyChallenge, error) {
	return s.challenges.FindByUser(ctx, userID, limit)
}

func (s *ChallengeService) Create(ctx context.Context, userID primitive.ObjectID, req *model.CreateChallengeRequest) (*model.DailyChallenge, error) {
	date := time.Now()
	if req.ChallengeDate != nil {
		date = *req.ChallengeDate
	}
	challenge := &model.DailyChallenge{
		UserID:        userID,
		ChallengeName: req.ChallengeName,
		ChallengeDate: date,
	}
	if err := s.challenges.Create(ctx, challenge); err != nil {
		return nil, err
	}
	return challenge, nil
}

// SetCompleted toggles the completed flag on the caller's own challenge.
// completedAt is stamped only on completion.
func (s *ChallengeService) SetCompleted(ctx context.Context, id, userID primitive.ObjectID, completed bool) (*model.DailyChallenge, error) {
	set := bson.M{"completed": completed}
	if completed {
		set["completedAt"] = time.Now()
	}
	return s.challenges.UpdateOwned(ctx, id, userID, bson.M{"$set": set})
}

func (s *ChallengeService) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	return s.challenges.DeleteOwned(ctx, id, userID)
}
