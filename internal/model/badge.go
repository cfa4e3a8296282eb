package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Requirement names the eligibility rule attached to a badge definition.
// Requirements outside the known set never match during evaluation.
type Requirement string

const (
	RequirementQuizCount1     Requirement = "quiz_count_1"
	RequirementQuizCount10    Requirement = "quiz_count_10"
	RequirementCarbonCalc1    Requirement = "carbon_calc_1"
	RequirementChallengeCount Requirement = "challenge_count_5"
	RequirementPostCount1     Requirement = "post_count_1"
	// Seeded but not yet evaluated.
	RequirementChallengeStreak7  Requirement = "challenge_streak_7"
	RequirementCarbonReduction10 Requirement = "carbon_reduction_10"
)

type Badge struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Icon        string             `bson:"icon" json:"icon"`
	Requirement Requirement        `bson:"requirement" json:"requirement"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

func (b *Badge) GetID() primitive.ObjectID   { return b.ID }
func (b *Badge) SetID(id primitive.ObjectID) { b.ID = id }

// UserBadge joins a user to an earned badge. The collection carries a
// unique index on (userId, badgeId); a badge is earned at most once.
type UserBadge struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   primitive.ObjectID `bson:"userId" json:"userId"`
	BadgeID  primitive.ObjectID `bson:"badgeId" json:"badgeId"`
	EarnedAt time.Time          `bson:"earnedAt" json:"earnedAt"`
}

func (u *UserBadge) GetID() primitive.ObjectID   { return u.ID }
func (u *UserBadge) SetID(id primitive.ObjectID) { u.ID = id }

// EarnedBadgeResponse is an earned badge joined with its definition.
type EarnedBadgeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	EarnedAt    time.Time `json:"earned_at"`
}

type CreateBadgeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Icon        string `json:"icon" binding:"required"`
	Requirement string `json:"requirement" binding:"required"`
}
