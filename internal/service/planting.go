package service

import (
	"context"
	"fmt"
	"time"

	"ecotrack/internal/model"
	"ecotrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlantingService handles planting areas and the trees planted in them.
type PlantingService struct {
	areas repository.IPlantingAreaRepository
	trees repository.IPlantedTreeRepository
	users repository.IUserRepository
}

func NewPlantingService(areas repository.IPlantingAreaRepository, trees repository.IPlantedTreeRepository, users repository.IUserRepository) *PlantingService {
	return &PlantingService{areas: areas, trees: trees, users: users}
}

func (s *PlantingService) ListAreas(ctx context.Context) ([]*model.PlantingArea, error) {
	return s.areas.FindAll(ctx)
}

func (s *PlantingService) GetArea(ctx context.Context, id primitive.ObjectID) (*model.PlantingArea, error) {
	return s.areas.FindByID(ctx, id)
}

func (s *PlantingService) CreateArea(ctx context.Context, req *model.CreatePlantingAreaRequest) (*model.PlantingArea, error) {
	now := time.Now()
	area := &model.PlantingArea{
		Title:       req.Title,
		Description: req.Description,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		District:    req.District,
		Division:    req.Division,
		ProblemType: req.ProblemType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.areas.Create(ctx, area); err != nil {
		return nil, err
	}
	return area, nil
}

func (s *PlantingService) UpdateArea(ctx context.Context, id primitive.ObjectID, req *model.UpdatePlantingAreaRequest) (*model.PlantingArea, error) {
	set := bson.M{"updatedAt": time.Now()}
	if req.Title != "" {
		set["title"] = req.Title
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
	if req.District != "" {
		set["district"] = req.District
	}
	if req.Division != "" {
		set["division"] = req.Division
	}
	if req.ProblemType != "" {
		set["problemType"] = req.ProblemType
	}
	if req.IsPlanted != nil {
		set["isPlanted"] = *req.IsPlanted
	}
	return s.areas.UpdateByID(ctx, id, bson.M{"$set": set})
}

// DeleteArea removes the area, then the trees planted in it. The two steps
// are sequential and not atomic.
func (s *PlantingService) DeleteArea(ctx context.Context, id primitive.ObjectID) error {
	if err := s.areas.DeleteByID(ctx, id); err != nil {
		return err
	}
	if _, err := s.trees.DeleteByArea(ctx, id); err != nil {
		return fmt.Errorf("area deleted but tree cleanup failed: %w", err)
	}
	return nil
}

// PlantTree records a tree in an existing area and marks the area planted.
func (s *PlantingService) PlantTree(ctx context.Context, user *model.User, req *model.PlantTreeRequest) (*model.TreeResponse, error) {
	areaID, err := primitive.ObjectIDFromHex(req.PlantingAreaID)
	if err != nil {
		return nil, fmt.Errorf("invalid planting area id: %w", err)
	}
	area, err := s.areas.FindByID(ctx, areaID)
	if err != nil {
		return nil, err
	}

	tree := &model.PlantedTree{
		PlantingAreaID: areaID,
		TreeType:       req.TreeType,
		PlantedBy:      user.ID,
		PlantedAt:      time.Now(),
		Notes:          req.Notes,
	}
	if err := s.trees.Create(ctx, tree); err != nil {
		return nil, err
	}

	area, err = s.areas.UpdateByID(ctx, areaID, bson.M{"$set": bson.M{
		"isPlanted": true,
		"updatedAt": time.Now(),
	}})
	if err != nil {
		return nil, fmt.Errorf("tree recorded but area update failed: %w", err)
	}

	planter := authorRef(user)
	resp := tree.ToResponse(area, &planter)
	return &resp, nil
}

// ListTrees returns planted trees, optionally restricted to one area, with
// their areas and planters resolved.
func (s *PlantingService) ListTrees(ctx context.Context, areaID primitive.ObjectID) ([]model.TreeResponse, error) {
	var (
		trees []*model.PlantedTree
		err   error
	)
	if areaID.IsZero() {
		trees, err = s.trees.FindAllSorted(ctx)
	} else {
		trees, err = s.trees.FindByArea(ctx, areaID)
	}
	if err != nil {
		return nil, err
	}
	return s.resolveTrees(ctx, trees)
}

// ListUserTrees returns the trees the given user planted.
func (s *PlantingService) ListUserTrees(ctx context.Context, userID primitive.ObjectID) ([]model.TreeResponse, error) {
	trees, err := s.trees.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolveTrees(ctx, trees)
}

func (s *PlantingService) resolveTrees(ctx context.Context, trees []*model.PlantedTree) ([]model.TreeResponse, error) {
	areas, err := s.areas.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	areasByID := make(map[primitive.ObjectID]*model.PlantingArea, len(areas))
	for _, a := range areas {
		areasByID[a.ID] = a
	}

	planterIDs := make([]primitive.ObjectID, 0, len(trees))
	for _, t := range trees {
		if !t.PlantedBy.IsZero() {
			planterIDs = append(planterIDs, t.PlantedBy)
		}
	}
	planters, err := s.users.FindByIDs(ctx, planterIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve planters: %w", err)
	}

	responses := make([]model.TreeResponse, len(trees))
	for i, t := range trees {
		var planter *model.AuthorRef
		if u, ok := planters[t.PlantedBy]; ok {
			ref := authorRef(u)
			planter = &ref
		}
		responses[i] = t.ToResponse(areasByID[t.PlantingAreaID], planter)
	}
	return responses, nil
}
