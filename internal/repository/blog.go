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

// IBlogRepository defines blog post persistence
type IBlogRepository interface {
	Create(ctx context.Context, post *model.BlogPost) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.BlogPost, error)
	FindAllSorted(ctx context.Context) ([]*model.BlogPost, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (*model.BlogPost, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type BlogRepository struct {
	*generic.Repository[*model.BlogPost]
}

func NewBlogRepository(db *mongo.Database) IBlogRepository {
	return &BlogRepository{generic.NewRepository[*model.BlogPost](db.Collection("blog_posts"))}
}

func (r *BlogRepository) Create(ctx context.Context, post *model.BlogPost) error {
	return r.Insert(ctx, post)
}

func (r *BlogRepository) FindAllSorted(ctx context.Context) ([]*model.BlogPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "publishedAt", Value: -1}})
	return r.Find(ctx, bson.M{}, opts)
}

func (r *BlogRepository) Count(ctx context.Context) (int64, error) {
	return r.Repository.Count(ctx, bson.M{})
}
