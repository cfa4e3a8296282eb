package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CarbonFootprint stores the totals as submitted by the client; the server
// does not re-derive them from the component inputs.
type CarbonFootprint struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID             primitive.ObjectID `bson:"userId" json:"userId"`
	ElectricityKwh     float64            `bson:"electricityKwh" json:"electricityKwh"`
	TransportationKm   float64            `bson:"transportationKm" json:"transportationKm"`
	TransportationType string             `bson:"transportationType" json:"transportationType"`
	WasteKg            float64            `bson:"wasteKg" json:"wasteKg"`
	TotalCo2Kg         float64            `bson:"totalCo2Kg" json:"totalCo2Kg"`
	Category           string             `bson:"category" json:"category"` // Low, Medium, High
	CalculatedAt       time.Time          `bson:"calculatedAt" json:"calculatedAt"`
}

func (c *CarbonFootprint) GetID() primitive.ObjectID   { return c.ID }
func (c *CarbonFootprint) SetID(id primitive.ObjectID) { c.ID = id }

type CreateFootprintRequest struct {
	ElectricityKwh     float64 `json:"electricityKwh"`
	TransportationKm   float64 `json:"transportationKm"`
	TransportationType string  `json:"transportationType"`
	WasteKg            float64 `json:"wasteKg"`
	TotalCo2Kg         float64 `json:"totalCo2Kg" binding:"required"`
	Category           string  `json:"category" binding:"required,carboncategory"`
}
