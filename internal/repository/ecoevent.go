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

// IEcoEventRepository defines eco event persistence
type IEcoEventRepository interface {
	Create(ctx context.Context, event *model.EcoEvent) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.EcoEvent, error)
	FindActive(ctx context.Context, eventType, district, division string) ([]*model.EcoEvent, error)
	FindAll(ctx context.Context) ([]*model.EcoEvent, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (*model.EcoEvent, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	EnsureIndexes(ctx context.Context) error
}

type EcoEventRepository struct {
	*generic.Repository[*model.EcoEvent]
}

func NewEcoEventRepository(db *mongo.Database) IEcoEventRepository {
	return &EcoEventRepository{generic.NewRepository[*model.EcoEvent](db.Collection("eco_events"))}
}

func (r *EcoEventRepository) Create(ctx context.Context, event *model.EcoEvent) error {
	return r.Insert(ctx, event)
}

// FindActive returns upcoming-first active events, optionally narrowed by
// type, district and division.
func (r *EcoEventRepository) FindActive(ctx context.Context, eventType, district, division string) ([]*model.EcoEvent, error) {
	filter := bson.M{"isActive": true}
	if eventType != "" {
		filter["eventType"] = eventType
	}
	if district != "" {
		filter["district"] = district
	}
	if division != "" {
		filter["division"] = division
	}
	opts := options.Find().SetSort(bson.D{{Key: "eventDate", Value: 1}})
	return r.Find(ctx, filter, opts)
}

func (r *EcoEventRepository) FindAll(ctx context.Context) ([]*model.EcoEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "eventDate", Value: -1}})
	return r.Find(ctx, bson.M{}, opts)
}

func (r *EcoEventRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "eventType", Value: 1},
			{Key: "district", Value: 1},
			{Key: "division", Value: 1},
			{Key: "eventDate", Value: 1},
			{Key: "isActive", Value: 1},
		},
	})
	return err
}
