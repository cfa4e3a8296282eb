package service

import (
	"context"
	"time"

	"ecotrack/internal/model"
	"ecotrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultMaxParticipants = 50

// EcoEventService handles community events.
type EcoEventService struct {
	events repository.IEcoEventRepository
}

func NewEcoEventService(events repository.IEcoEventRepository) *EcoEventService {
	return &EcoEventService{events: events}
}

func (s *EcoEventService) ListActive(ctx context.Context, eventType, district, division string) ([]*model.EcoEvent, error) {
	return s.events.FindActive(ctx, eventType, district, division)
}

func (s *EcoEventService) ListAll(ctx context.Context) ([]*model.EcoEvent, error) {
	return s.events.FindAll(ctx)
}

func (s *EcoEventService) Get(ctx context.Context, id primitive.ObjectID) (*model.EcoEvent, error) {
	return s.events.FindByID(ctx, id)
}

func (s *EcoEventService) Create(ctx context.Context, creator primitive.ObjectID, req *model.CreateEcoEventRequest) (*model.EcoEvent, error) {
	now := time.Now()
	maxParticipants := req.MaxParticipants
	if maxParticipants == 0 {
		maxParticipants = defaultMaxParticipants
	}
	event := &model.EcoEvent{
		Title:           req.Title,
		Description:     req.Description,
		EventType:       req.EventType,
		EventDate:       req.EventDate,
		EventTime:       req.EventTime,
		LocationName:    req.LocationName,
		Latitude:        *req.Latitude,
		Longitude:       *req.Longitude,
		City:            req.City,
		District:        req.District,
		Division:        req.Division,
		Organizer:       req.Organizer,
		ContactInfo:     req.ContactInfo,
		MaxParticipants: maxParticipants,
		IsActive:        true,
		CreatedBy:       creator,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EcoEventService) Update(ctx context.Context, id primitive.ObjectID, req *model.UpdateEcoEventRequest) (*model.EcoEvent, error) {
	set := bson.M{"updatedAt": time.Now()}
	if req.Title != "" {
		set["title"] = req.Title
	}
	if req.Description != "" {
		set["description"] = req.Description
	}
	if req.EventType != "" {
		set["eventType"] = req.EventType
	}
	if req.EventDate != nil {
		set["eventDate"] = *req.EventDate
	}
	if req.EventTime != "" {
		set["eventTime"] = req.EventTime
	}
	if req.LocationName != "" {
		set["locationName"] = req.LocationName
	}
	if req.Latitude != nil {
		set["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		set["longitude"] = *req.Longitude
	}
	if req.City != "" {
		set["city"] = req.City
	}
	if req.District != "" {
		set["district"] = req.District
	}
	if req.Division != "" {
		set["division"] = req.Division
	}
	if req.Organizer != "" {
		set["organizer"] = req.Organizer
	}
	if req.ContactInfo != "" {
		set["contactInfo"] = req.ContactInfo
	}
	if req.MaxParticipants != nil {
		set["maxParticipants"] = *req.MaxParticipants
	}
	if req.IsActive != nil {
		set["isActive"] = *req.IsActive
	}
	return s.events.UpdateByID(ctx, id, bson.M{"$set": set})
}

func (s *EcoEventService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.events.DeleteByID(ctx, id)
}
