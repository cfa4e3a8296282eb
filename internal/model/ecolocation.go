package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EcoLocation struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Latitude    float64            `bson:"latitude" json:"latitude"`
	Longitude   float64            `bson:"longitude" json:"longitude"`
	Category    string             `bson:"category" json:"category"`
	City        string             `bson:"city,omitempty" json:"city,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

func (l *EcoLocation) GetID() primitive.ObjectID   { return l.ID }
func (l *EcoLocation) SetID(id primitive.ObjectID) { l.ID = id }

type CreateEcoLocationRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Latitude    *float64 `json:"latitude" binding:"required"`
	Longitude   *float64 `json:"longitude" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	City        string   `json:"city"`
}

type UpdateEcoLocationRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Category    string   `json:"category"`
	City        string   `json:"city"`
}
