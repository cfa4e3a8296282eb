package repository

import (
	"context"

	"ecotrack/internal/model"
	"ecotrack/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IChallengeRepository defines daily challenge persistence
type IChallengeRepository interface {
	Create(ctx context.Context, challenge *model.DailyChallenge) error
	FindByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]*model.DailyChallenge, error)
	UpdateOwned(ctx context.Context, id, userID primitive.ObjectID, update bson.M) (*model.DailyChallenge, error)
	DeleteOwned(ctx context.Context, id, userID primitive.ObjectID) error
	CountCompletedByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
	Count(ctx context.Context) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type ChallengeRepository struct {
	*generic.Repository[*model.DailyChallenge]
}

func NewChallengeRepository(db *mongo.Database) IChallengeRepository {
	return &ChallengeRepository{generic.NewRepository[*model.DailyChallenge](db.Collection("daily_challenges"))}
}

func (r *ChallengeRepository) Create(ctx context.Context, challenge *model.DailyChallenge) error {
	return r.Insert(ctx, challenge)
}

func (r *ChallengeRepository) FindByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]*model.DailyChallenge, error) {
	opts := options.Find().SetSort(bson.D{{Key: "challengeDate", Value: -1}}).SetLimit(limit)
	return r.Find(ctx, bson.M{"userId": userID}, opts)
}

func (r *ChallengeRepository) UpdateOwned(ctx context.Context, id, userID primitive.ObjectID, update bson.M) (*model.DailyChallenge, error) {
	return r.UpdateOne(ctx, bson.M{"_id": id, "userId": userID}, update)
}

func (r *ChallengeRepository) DeleteOwned(ctx context.Context, id, userID primitive.ObjectID) error {
	return r.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
}

func (r *ChallengeRepository) CountCompletedByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return r.Repository.Count(ctx, bson.M{"userId": userID, "completed": true})
}

func (r *ChallengeRepository) Count(ctx context.Context) (int64, error) {
	return r.Repository.Count(ctx, bson.M{})
}

func (r *ChallengeRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "challengeDate", Value: -1}},
	})
	return err
}
