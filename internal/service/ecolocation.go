package service

import (
	"context"
	"time"

	"ecotrack/internal/model"
	"ecotrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EcoLocationService handles map locations.
type EcoLocationService struct {
	locations repository.IEcoLocationRepository
}

func NewEcoLocationService(locations repository.IEcoLocationRepository) *EcoLocationService {
	return &EcoLocationService{locations: locations}
}

func (s *EcoLocationService) List(ctx context.Context, category, city string) ([]*model.EcoLocation, error) {
	return s.locations.FindFiltered(ctx, category, city)
}

func (s *EcoLocationService) Get(ctx context.Context, id primitive.ObjectID) (*model.EcoLocation, error) {
	return s.locations.FindByID(ctx, id)
}

func (s *EcoLocationService) Create(ctx context.Context, req *model.CreateEcoLocationRequest) (*model.EcoLocation, error) {
	location := &model.EcoLocation{
		Name:        req.Name,
		Description: req.Description,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		Category:    req.Category,
		City:        req.City,
		CreatedAt:   time.Now(),
	}
	if err := s.locations.Create(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *EcoLocationService) Update(ctx context.Context, id primitive.ObjectID, req *model.UpdateEcoLocationRequest) (*model.EcoLocation, error) {
	set := bson.M{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Description != "" {
		set["description"] = req.Description
	}
	if req.Latitude != nil {
		set["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		set["longitude"] = *req.Longitude
	}
	if req.Category != "" {
		set["category"] = req.Category
	}
	if req.City != "" {
		set["city"] = req.City
	}
	return s.locations.UpdateByID(ctx, id, bson.M{"$set": set})
}

func (s *EcoLocationService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.locations.DeleteByID(ctx, id)
}
