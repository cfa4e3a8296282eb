package generic

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a document does not exist in the collection.
var ErrNotFound = errors.New("document not found")

// Repository is a generic MongoDB repository. Collection-specific
// repositories embed it and add their own query methods.
type Repository[T Entity] struct {
	Collection *mongo.Collection
}

func NewRepository[T Entity](collection *mongo.Collection) *Repository[T] {
	return &Repository[T]{Collection: collection}
}

// Insert assigns a fresh ObjectID and inserts the document.
func (r *Repository[T]) Insert(ctx context.Context, entity T) error {
	entity.SetID(primitive.NewObjectID())
	_, err := r.Collection.InsertOne(ctx, entity)
	return err
}

func (r *Repository[T]) FindByID(ctx context.Context, id primitive.ObjectID) (T, error) {
	return r.FindOne(ctx, bson.M{"_id": id})
}

func (r *Repository[T]) FindOne(ctx context.Context, filter bson.M) (T, error) {
	var entity T
	err := r.Collection.FindOne(ctx, filter).Decode(&entity)
	if err == mongo.ErrNoDocuments {
		return entity, ErrNotFound
	}
	return entity, err
}

func (r *Repository[T]) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := r.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	entities := []T{}
	if err := cursor.All(ctx, &entities); err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *Repository[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.Collection.CountDocuments(ctx, filter)
}

// UpdateOne applies a partial update and returns the updated document.
func (r *Repository[T]) UpdateOne(ctx context.Context, filter bson.M, update bson.M) (T, error) {
	var entity T
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&entity)
	if err == mongo.ErrNoDocuments {
		return entity, ErrNotFound
	}
	return entity, err
}

func (r *Repository[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (T, error) {
	return r.UpdateOne(ctx, bson.M{"_id": id}, update)
}

// DeleteOne removes the first document matching the filter.
// Returns ErrNotFound when nothing matched.
func (r *Repository[T]) DeleteOne(ctx context.Context, filter bson.M) error {
	res, err := r.Collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	return r.DeleteOne(ctx, bson.M{"_id": id})
}

func (r *Repository[T]) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	res, err := r.Collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
