package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EcoEvent struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title               string             `bson:"title" json:"title"`
	Description         string             `bson:"description" json:"description"`
	EventType           string             `bson:"eventType" json:"eventType"`
	EventDate           time.Time          `bson:"eventDate" json:"eventDate"`
	EventTime           string             `bson:"eventTime,omitempty" json:"eventTime,omitempty"`
	LocationName        string             `bson:"locationName" json:"locationName"`
	Latitude            float64            `bson:"latitude" json:"latitude"`
	Longitude           float64            `bson:"longitude" json:"longitude"`
	City                string             `bson:"city,omitempty" json:"city,omitempty"`
	District            string             `bson:"district" json:"district"`
	Division            string             `bson:"division" json:"division"`
	Organizer           string             `bson:"organizer,omitempty" json:"organizer,omitempty"`
	ContactInfo         string             `bson:"contactInfo,omitempty" json:"contactInfo,omitempty"`
	MaxParticipants     int                `bson:"maxParticipants" json:"maxParticipants"`
	CurrentParticipants int                `bson:"currentParticipants" json:"currentParticipants"`
	IsActive            bool               `bson:"isActive" json:"isActive"`
	CreatedBy           primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (e *EcoEvent) GetID() primitive.ObjectID   { return e.ID }
func (e *EcoEvent) SetID(id primitive.ObjectID) { e.ID = id }

type CreateEcoEventRequest struct {
	Title           string    `json:"title" binding:"required"`
	Description     string    `json:"description" binding:"required"`
	EventType       string    `json:"eventType" binding:"required"`
	EventDate       time.Time `json:"eventDate" binding:"required"`
	EventTime       string    `json:"eventTime"`
	LocationName    string    `json:"locationName" binding:"required"`
	Latitude        *float64  `json:"latitude" binding:"required"`
	Longitude       *float64  `json:"longitude" binding:"required"`
	City            string    `json:"city"`
	District        string    `json:"district" binding:"required"`
	Division        string    `json:"division" binding:"required"`
	Organizer       string    `json:"organizer"`
	ContactInfo     string    `json:"contactInfo"`
	MaxParticipants int       `json:"maxParticipants"`
}

type UpdateEcoEventRequest struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	EventType       string     `json:"eventType"`
	EventDate       *time.Time `json:"eventDate"`
	EventTime       string     `json:"eventTime"`
	LocationName    string     `json:"locationName"`
	Latitude        *float64   `json:"latitude"`
	Longitude       *float64   `json:"longitude"`
	City            string     `json:"city"`
	District        string     `json:"district"`
	Division        string     `json:"division"`
	Organizer       string     `json:"organizer"`
	ContactInfo     string     `json:"contactInfo"`
	MaxParticipants *int       `json:"maxParticipants"`
	IsActive        *bool      `json:"isActive"`
}
