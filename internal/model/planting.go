package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PlantingArea struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Latitude    float64            `bson:"latitude" json:"latitude"`
	Longitude   float64            `bson:"longitude" json:"longitude"`
	District    string             `bson:"district" json:"district"`
	Division    string             `bson:"division" json:"division"`
	ProblemType string             `bson:"problemType" json:"problemType"`
	IsPlanted   bool               `bson:"isPlanted" json:"isPlanted"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (a *PlantingArea) GetID() primitive.ObjectID   { return a.ID }
func (a *PlantingArea) SetID(id primitive.ObjectID) { a.ID = id }

type PlantedTree struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PlantingAreaID primitive.ObjectID `bson:"plantingAreaId" json:"plantingAreaId"`
	TreeType       string             `bson:"treeType" json:"treeType"`
	PlantedBy      primitive.ObjectID `bson:"plantedBy,omitempty" json:"plantedBy,omitempty"`
	PlantedAt      time.Time          `bson:"plantedAt" json:"plantedAt"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

func (t *PlantedTree) GetID() primitive.ObjectID   { return t.ID }
func (t *PlantedTree) SetID(id primitive.ObjectID) { t.ID = id }

// TreeResponse is a planted tree with its area and planter resolved.
type TreeResponse struct {
	ID           string        `json:"id"`
	TreeType     string        `json:"treeType"`
	PlantedAt    time.Time     `json:"plantedAt"`
	Notes        string        `json:"notes,omitempty"`
	PlantingArea *PlantingArea `json:"plantingArea,omitempty"`
	PlantedBy    *AuthorRef    `json:"plantedBy,omitempty"`
}

func (t *PlantedTree) ToResponse(area *PlantingArea, planter *AuthorRef) TreeResponse {
	return TreeResponse{
		ID:           t.ID.Hex(),
		TreeType:     t.TreeType,
		PlantedAt:    t.PlantedAt,
		Notes:        t.Notes,
		PlantingArea: area,
		PlantedBy:    planter,
	}
}

type CreatePlantingAreaRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Latitude    *float64 `json:"latitude" binding:"required"`
	Longitude   *float64 `json:"longitude" binding:"required"`
	District    string   `json:"district" binding:"required"`
	Division    string   `json:"division" binding:"required"`
	ProblemType string   `json:"problemType"`
}

type UpdatePlantingAreaRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	District    string   `json:"district"`
	Division    string   `json:"division"`
	ProblemType string   `json:"problemType"`
	IsPlanted   *bool    `json:"isPlanted"`
}

type PlantTreeRequest struct {
	PlantingAreaID string `json:"plantingAreaId" binding:"required"`
	TreeType       string `json:"treeType" binding:"required"`
	Notes          string `json:"notes"`
}
