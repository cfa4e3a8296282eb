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

// IPostRepository defines community post persistence
type IPostRepository interface {
	Create(ctx context.Context, post *model.CommunityPost) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.CommunityPost, error)
	FindAllSorted(ctx context.Context) ([]*model.CommunityPost, error)
	FindOwned(ctx context.Context, id, userID primitive.ObjectID) (*model.CommunityPost, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	IncrementLikes(ctx context.Context, id primitive.ObjectID) (*model.CommunityPost, error)
	CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type PostRepository struct {
	*generic.Repository[*model.CommunityPost]
}

func NewPostRepository(db *mongo.Database) IPostRepository {
	return &PostRepository{generic.NewRepository[*model.CommunityPost](db.Collection("community_posts"))}
}

func (r *PostRepository) Create(ctx context.Context, post *model.CommunityPost) error {
	return r.Insert(ctx, post)
}

func (r *PostRepository) FindAllSorted(ctx context.Context) ([]*model.CommunityPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.Find(ctx, bson.M{}, opts)
}

func (r *PostRepository) FindOwned(ctx context.Context, id, userID primitive.ObjectID) (*model.CommunityPost, error) {
	return r.FindOne(ctx, bson.M{"_id": id, "userId": userID})
}

func (r *PostRepository) IncrementLikes(ctx context.Context, id primitive.ObjectID) (*model.CommunityPost, error) {
	return r.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"likes": 1}})
}

func (r *PostRepository) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return r.Repository.Count(ctx, bson.M{"userId": userID})
}

func (r *PostRepository) Count(ctx context.Context) (int64, error) {
	return r.Repository.Count(ctx, bson.M{})
}

// ICommentRepository defines post comment persistence
type ICommentRepository interface {
	Create(ctx context.Context, comment *model.PostComment) error
	FindByPost(ctx context.Context, postID primitive.ObjectID) ([]*model.PostComment, error)
	DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type CommentRepository struct {
	*generic.Repository[*model.PostComment]
}

func NewCommentRepository(db *mongo.Database) ICommentRepository {
	return &CommentRepository{generic.NewRepository[*model.PostComment](db.Collection("post_comments"))}
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.PostComment) error {
	return r.Insert(ctx, comment)
}

func (r *CommentRepository) FindByPost(ctx context.Context, postID primitive.ObjectID) ([]*model.PostComment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.Find(ctx, bson.M{"postId": postID}, opts)
}

func (r *CommentRepository) DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	return r.DeleteMany(ctx, bson.M{"postId": postID})
}

func (r *CommentRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "postId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}
