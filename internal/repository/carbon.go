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

// ICarbonRepository defines carbon footprint persistence
type ICarbonRepository interface {
	Create(ctx context.Context, footprint *model.CarbonFootprint) error
	FindByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]*model.CarbonFootprint, error)
	CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type CarbonRepository struct {
	*generic.Repository[*model.CarbonFootprint]
}

func NewCarbonRepository(db *mongo.Database) ICarbonRepository {
	return &CarbonRepository{generic.NewRepository[*model.CarbonFootprint](db.Collection("carbon_footprints"))}
}

func (r *CarbonRepository) Create(ctx context.Context, footprint *model.CarbonFootprint) error {
	return r.Insert(ctx, footprint)
}

func (r *CarbonRepository) FindByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]*model.CarbonFootprint, error) {
	opts := options.Find().SetSort(bson.D{{Key: "calculatedAt", Value: -1}}).SetLimit(limit)
	return r.Find(ctx, bson.M{"userId": userID}, opts)
}

func (r *CarbonRepository) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return r.Repository.Count(ctx, bson.M{"userId": userID})
}

func (r *CarbonRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "calculatedAt", Value: -1}},
	})
	return err
}
