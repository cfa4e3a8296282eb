package service

import (
	"context"
	"errors"
	"testing"

	"ecotrack/internal/model"
	"ecotrack/pkg/generic"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type plantingFixture struct {
	svc   *PlantingService
	areas *fakeAreaRepo
	trees *fakeTreeRepo
	users *fakeUserRepo
}

func newPlantingFixture() *plantingFixture {
	f := &plantingFixture{
		areas: &fakeAreaRepo{},
		trees: &fakeTreeRepo{},
		users: &fakeUserRepo{},
	}
	f.svc = NewPlantingService(f.areas, f.trees, f.users)
	return f
}

func (f *plantingFixture) addArea(t *testing.T, title string) *model.PlantingArea {
	t.Helper()
	lat, lng := 23.8, 90.4
	area, err := f.svc.CreateArea(context.Background(), &model.CreatePlantingAreaRequest{
		Title: title, Description: "barren roadside", Latitude: &lat, Longitude: &lng,
		District: "Dhaka", Division: "Dhaka",
	})
	if err != nil {
		t.Fatalf("CreateArea: %v", err)
	}
	return area
}

func TestPlantTreeFlagsAreaAndPopulates(t *testing.T) {
	f := newPlantingFixture()
	planter := &model.User{FullName: "karim"}
	_ = f.users.Create(context.Background(), planter)
	area := f.addArea(t, "Mirpur roadside")

	tree, err := f.svc.PlantTree(context.Background(), planter, &model.PlantTreeRequest{
		PlantingAreaID: area.ID.Hex(),
		TreeType:       "mahogany",
		Notes:          "watered on planting",
	})
	if err != nil {
		t.Fatalf("PlantTree: %v", err)
	}

	if !area.IsPlanted {
		t.Error("area not flagged as planted")
	}
	if tree.PlantingArea == nil || tree.PlantingArea.ID != area.ID {
		t.Fatal("response missing planting area back-reference")
	}
	if !tree.PlantingArea.IsPlanted {
		t.Error("populated area not flagged as planted")
	}
	if tree.PlantedBy == nil || tree.PlantedBy.FullName != "karim" {
		t.Error("response missing planter name")
	}
}

func TestPlantTreeRequiresArea(t *testing.T) {
	f := newPlantingFixture()
	planter := &model.User{FullName: "karim"}
	_ = f.users.Create(context.Background(), planter)

	_, err := f.svc.PlantTree(context.Background(), planter, &model.PlantTreeRequest{
		PlantingAreaID: primitive.NewObjectID().Hex(),
		TreeType:       "mahogany",
	})
	if !errors.Is(err, generic.ErrNotFound) {
		t.Fatalf("PlantTree on missing area = %v, want ErrNotFound", err)
	}
	if len(f.trees.trees) != 0 {
		t.Error("tree recorded for missing area")
	}
}

func TestDeleteAreaCascadesTrees(t *testing.T) {
	f := newPlantingFixture()
	planter := &model.User{FullName: "karim"}
	_ = f.users.Create(context.Background(), planter)
	area := f.addArea(t, "Gulshan corner")
	other := f.addArea(t, "Banani strip")

	for _, a := range []*model.PlantingArea{area, area, other} {
		if _, err := f.svc.PlantTree(context.Background(), planter, &model.PlantTreeRequest{
			PlantingAreaID: a.ID.Hex(), TreeType: "neem",
		}); err != nil {
			t.Fatalf("PlantTree: %v", err)
		}
	}

	if err := f.svc.DeleteArea(context.Background(), area.ID); err != nil {
		t.Fatalf("DeleteArea: %v", err)
	}

	if len(f.trees.trees) != 1 {
		t.Fatalf("trees remaining = %d, want only the other area's tree", len(f.trees.trees))
	}
	if f.trees.trees[0].PlantingAreaID != other.ID {
		t.Error("wrong tree survived the cascade")
	}
}

func TestListTreesResolvesReferences(t *testing.T) {
	f := newPlantingFixture()
	planter := &model.User{FullName: "karim"}
	_ = f.users.Create(context.Background(), planter)
	area := f.addArea(t, "Uttara plot")
	if _, err := f.svc.PlantTree(context.Background(), planter, &model.PlantTreeRequest{
		PlantingAreaID: area.ID.Hex(), TreeType: "rain tree",
	}); err != nil {
		t.Fatalf("PlantTree: %v", err)
	}

	trees, err := f.svc.ListTrees(context.Background(), primitive.NilObjectID)
	if err != nil {
		t.Fatalf("ListTrees: %v", err)
	}
	if len(trees) != 1 {
		t.Fatalf("trees = %d, want 1", len(trees))
	}
	if trees[0].PlantingArea == nil || trees[0].PlantingArea.Title != "Uttara plot" {
		t.Error("area not resolved on listing")
	}
	if trees[0].PlantedBy == nil || trees[0].PlantedBy.FullName != "karim" {
		t.Error("planter not resolved on listing")
	}
}
