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

// IPlantingAreaRepository defines planting area persistence
type IPlantingAreaRepository interface {
	Create(ctx context.Context, area *model.PlantingArea) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.PlantingArea, error)
	FindAll(ctx context.Context) ([]*model.PlantingArea, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (*model.PlantingArea, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

type PlantingAreaRepository struct {
	*generic.Repository[*model.PlantingArea]
}

func NewPlantingAreaRepository(db *mongo.Database) IPlantingAreaRepository {
	return &PlantingAreaRepository{generic.NewRepository[*model.PlantingArea](db.Collection("planting_areas"))}
}

func (r *PlantingAreaRepository) Create(ctx context.Context, area *model.PlantingArea) error {
	return r.Insert(ctx, area)
}

func (r *PlantingAreaRepository) FindAll(ctx context.Context) ([]*model.PlantingArea, error) {
	return r.Find(ctx, bson.M{})
}

// IPlantedTreeRepository defines planted tree persistence
type IPlantedTreeRepository interface {
	Create(ctx context.Context, tree *model.PlantedTree) error
	FindByArea(ctx context.Context, areaID primitive.ObjectID) ([]*model.PlantedTree, error)
	FindAllSorted(ctx context.Context) ([]*model.PlantedTree, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.PlantedTree, error)
	DeleteByArea(ctx context.Context, areaID primitive.ObjectID) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type PlantedTreeRepository struct {
	*generic.Repository[*model.PlantedTree]
}

func NewPlantedTreeRepository(db *mongo.Database) IPlantedTreeRepository {
	return &PlantedTreeRepository{generic.NewRepository[*model.PlantedTree](db.Collection("planted_trees"))}
}

func (r *PlantedTreeRepository) Create(ctx context.Context, tree *model.PlantedTree) error {
	return r.Insert(ctx, tree)
}

func (r *PlantedTreeRepository) FindByArea(ctx context.Context, areaID primitive.ObjectID) ([]*model.PlantedTree, error) {
	opts := options.Find().SetSort(bson.D{{Key: "plantedAt", Value: -1}})
	return r.Find(ctx, bson.M{"plantingAreaId": areaID}, opts)
}

func (r *PlantedTreeRepository) FindAllSorted(ctx context.Context) ([]*model.PlantedTree, error) {
	opts := options.Find().SetSort(bson.D{{Key: "plantedAt", Value: -1}})
	return r.Find(ctx, bson.M{}, opts)
}

func (r *PlantedTreeRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.PlantedTree, error) {
	opts := options.Find().SetSort(bson.D{{Key: "plantedAt", Value: -1}})
	return r.Find(ctx, bson.M{"plantedBy": userID}, opts)
}

func (r *PlantedTreeRepository) DeleteByArea(ctx context.Context, areaID primitive.ObjectID) (int64, error) {
	return r.DeleteMany(ctx, bson.M{"plantingAreaId": areaID})
}

func (r *PlantedTreeRepository) EnsureIndexes(ctx context.Context) error {
	for _, keys := range []bson.D{
		{{Key: "plantingAreaId", Value: 1}},
		{{Key: "plantedBy", Value: 1}},
	} {
		if _, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys}); err != nil {
			return err
		}
	}
	return nil
}
