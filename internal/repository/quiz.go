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

// IQuizQuestionRepository defines quiz question persistence
type IQuizQuestionRepository interface {
	Create(ctx context.Context, question *model.QuizQuestion) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.QuizQuestion, error)
	FindActive(ctx context.Context, limit int64) ([]*model.QuizQuestion, error)
	FindAll(ctx context.Context) ([]*model.QuizQuestion, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (*model.QuizQuestion, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	EnsureIndexes(ctx context.Context) error
}

type QuizQuestionRepository struct {
	*generic.Repository[*model.QuizQuestion]
}

func NewQuizQuestionRepository(db *mongo.Database) IQuizQuestionRepository {
	return &QuizQuestionRepository{generic.NewRepository[*model.QuizQuestion](db.Collection("quiz_questions"))}
}

func (r *QuizQuestionRepository) Create(ctx context.Context, question *model.QuizQuestion) error {
	return r.Insert(ctx, question)
}

func (r *QuizQuestionRepository) FindActive(ctx context.Context, limit int64) ([]*model.QuizQuestion, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	return r.Find(ctx, bson.M{"isActive": true}, opts)
}

func (r *QuizQuestionRepository) FindAll(ctx context.Context) ([]*model.QuizQuestion, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.Find(ctx, bson.M{}, opts)
}

func (r *QuizQuestionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "category", Value: 1}},
	})
	return err
}

// IQuizAttemptRepository defines quiz attempt persistence
type IQuizAttemptRepository interface {
	Create(ctx context.Context, attempt *model.QuizAttempt) error
	FindByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]*model.QuizAttempt, error)
	FindAllByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.QuizAttempt, error)
	CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
	Count(ctx context.Context) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type QuizAttemptRepository struct {
	*generic.Repository[*model.QuizAttempt]
}

func NewQuizAttemptRepository(db *mongo.Database) IQuizAttemptRepository {
	return &QuizAttemptRepository{generic.NewRepository[*model.QuizAttempt](db.Collection("quiz_attempts"))}
}

func (r *QuizAttemptRepository) Create(ctx context.Context, attempt *model.QuizAttempt) error {
	return r.Insert(ctx, attempt)
}

func (r *QuizAttemptRepository) FindByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]*model.QuizAttempt, error) {
	opts := options.Find().SetSort(bson.D{{Key: "completedAt", Value: -1}}).SetLimit(limit)
	return r.Find(ctx, bson.M{"userId": userID}, opts)
}

func (r *QuizAttemptRepository) FindAllByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.QuizAttempt, error) {
	return r.Find(ctx, bson.M{"userId": userID})
}

func (r *QuizAttemptRepository) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return r.Repository.Count(ctx, bson.M{"userId": userID})
}

func (r *QuizAttemptRepository) Count(ctx context.Context) (int64, error) {
	return r.Repository.Count(ctx, bson.M{})
}

func (r *QuizAttemptRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "completedAt", Value: -1}},
	})
	return err
}
