package service

import (
	"context"
	"time"

	"ecotrack/internal/model"
	"ecotrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CarbonService handles carbon footprint logs.
type CarbonService struct {
	footprints repository.ICarbonRepository
}

func NewCarbonService(footprints repository.ICarbonRepository) *CarbonService {
	return &CarbonService{footprints: footprints}
}

func (s *CarbonService) List(ctx context.Context, userID primitive.ObjectID, limit int64) ([]*model.CarbonFootprint, error) {
	return s.footprints.FindByUser(ctx, userID, limit)
}

// Create stores the footprint as submitted. Totals and category are
// client-computed and not re-derived here.
func (s *CarbonService) Create(ctx context.Context, userID primitive.ObjectID, req *model.CreateFootprintRequest) (*model.CarbonFootprint, error) {
	footprint := &model.CarbonFootprint{
		UserID:             userID,
		ElectricityKwh:     req.ElectricityKwh,
		TransportationKm:   req.TransportationKm,
		TransportationType: req.TransportationType,
		WasteKg:            req.WasteKg,
		TotalCo2Kg:         req.TotalCo2Kg,
		Category:           req.Category,
		CalculatedAt:       time.Now(),
	}
	if err := s.footprints.Create(ctx, footprint); err != nil {
		return nil, err
	}
	return footprint, nil
}
