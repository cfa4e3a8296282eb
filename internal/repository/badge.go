package repository

import (
	"context"
	"time"

	"ecotrack/internal/model"
	"ecotrack/pkg/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IBadgeRepository defines badge definition persistence
type IBadgeRepository interface {
	Create(ctx context.Context, badge *model.Badge) error
	FindAll(ctx context.Context) ([]*model.Badge, error)
	Count(ctx context.Context) (int64, error)
}

type BadgeRepository struct {
	*generic.Repository[*model.Badge]
}

func NewBadgeRepository(db *mongo.Database) IBadgeRepository {
	return &BadgeRepository{generic.NewRepository[*model.Badge](db.Collection("badges"))}
}

func (r *BadgeRepository) Create(ctx context.Context, badge *model.Badge) error {
	return r.Insert(ctx, badge)
}

func (r *BadgeRepository) FindAll(ctx context.Context) ([]*model.Badge, error) {
	return r.Find(ctx, bson.M{})
}

func (r *BadgeRepository) Count(ctx context.Context) (int64, error) {
	return r.Repository.Count(ctx, bson.M{})
}

// IUserBadgeRepository defines earned badge persistence
type IUserBadgeRepository interface {
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.UserBadge, error)
	InsertMany(ctx context.Context, userBadges []*model.UserBadge) error
	CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type UserBadgeRepository struct {
	*generic.Repository[*model.UserBadge]
}

func NewUserBadgeRepository(db *mongo.Database) IUserBadgeRepository {
	return &UserBadgeRepository{generic.NewRepository[*model.UserBadge](db.Collection("user_badges"))}
}

func (r *UserBadgeRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.UserBadge, error) {
	return r.Find(ctx, bson.M{"userId": userID})
}

// InsertMany grants a batch of badges in a single operation. The unique
// (userId, badgeId) index rejects the whole batch on a duplicate.
func (r *UserBadgeRepository) InsertMany(ctx context.Context, userBadges []*model.UserBadge) error {
	if len(userBadges) == 0 {
		return nil
	}
	docs := make([]interface{}, len(userBadges))
	now := time.Now()
	for i, ub := range userBadges {
		ub.ID = primitive.NewObjectID()
		if ub.EarnedAt.IsZero() {
			ub.EarnedAt = now
		}
		docs[i] = ub
	}
	_, err := r.Collection.InsertMany(ctx, docs)
	return err
}

func (r *UserBadgeRepository) CountByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return r.Repository.Count(ctx, bson.M{"userId": userID})
}

func (r *UserBadgeRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "badgeId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
