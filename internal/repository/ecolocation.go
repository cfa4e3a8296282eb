package repository

import (
	"context"

	"ecotrack/internal/model"
	"ecotrack/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IEcoLocationRepository defines eco location persistence
type IEcoLocationRepository interface {
	Create(ctx context.Context, location *model.EcoLocation) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.EcoLocation, error)
	FindFiltered(ctx context.Context, category, city string) ([]*model.EcoLocation, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (*model.EcoLocation, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type EcoLocationRepository struct {
	*generic.Repository[*model.EcoLocation]
}

func NewEcoLocationRepository(db *mongo.Database) IEcoLocationRepository {
	return &EcoLocationRepository{generic.NewRepository[*model.EcoLocation](db.Collection("eco_locations"))}
}

func (r *EcoLocationRepository) Create(ctx context.Context, location *model.EcoLocation) error {
	return r.Insert(ctx, location)
}

func (r *EcoLocationRepository) FindFiltered(ctx context.Context, category, city string) ([]*model.EcoLocation, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if city != "" {
		filter["city"] = city
	}
	return r.Find(ctx, filter)
}

func (r *EcoLocationRepository) Count(ctx context.Context) (int64, error) {
	return r.Repository.Count(ctx, bson.M{})
}
