package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DailyChallenge struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	ChallengeName string             `bson:"challengeName" json:"challengeName"`
	Completed     bool               `bson:"completed" json:"completed"`
	CompletedAt   *time.Time         `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	ChallengeDate time.Time          `bson:"challengeDate" json:"challengeDate"`
}

func (d *DailyChallenge) GetID() primitive.ObjectID   { return d.ID }
func (d *DailyChallenge) SetID(id primitive.ObjectID) { d.ID = id }

type CreateChallengeRequest struct {
	ChallengeName string     `json:"challengeName" binding:"required"`
	ChallengeDate *time.Time `json:"challengeDate"`
}

type UpdateChallengeRequest struct {
	Completed bool `json:"completed"`
}
