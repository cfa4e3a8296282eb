package server

import (
	"context"
	"time"

	"ecotrack/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PopulateInitialData seeds content collections that are still empty so a
// fresh deployment starts with usable data. Each collection is checked
// independently; existing data is never touched.
func PopulateInitialData(ctx context.Context, repos *Repositories) error {
	if err := seedBadges(ctx, repos); err != nil {
		return err
	}
	if err := seedBlogPosts(ctx, repos); err != nil {
		return err
	}
	if err := seedEcoLocations(ctx, repos); err != nil {
		return err
	}
	return seedQuizQuestions(ctx, repos)
}

func seedBadges(ctx context.Context, repos *Repositories) error {
	count, err := repos.Badges.Count(ctx)
	if err != nil || count > 0 {
		return err
	}
	seeds := []struct {
		name, description, icon string
		requirement             model.Requirement
	}{
		{"First Quiz", "Complete your first eco quiz", "🎓", model.RequirementQuizCount1},
		{"Quiz Master", "Complete 10 eco quizzes", "🏆", model.RequirementQuizCount10},
		{"Carbon Aware", "Calculate your carbon footprint", "🌍", model.RequirementCarbonCalc1},
		{"Challenge Champion", "Complete 5 daily challenges", "💪", model.RequirementChallengeCount},
		{"Community Voice", "Share your first community post", "📢", model.RequirementPostCount1},
		{"Streak Keeper", "Complete challenges 7 days in a row", "🔥", model.RequirementChallengeStreak7},
		{"Carbon Cutter", "Reduce your footprint by 10 percent", "✂️", model.RequirementCarbonReduction10},
	}
	for _, s := range seeds {
		badge := &model.Badge{
			Name:        s.name,
			Description: s.description,
			Icon:        s.icon,
			Requirement: s.requirement,
			CreatedAt:   time.Now(),
		}
		if err := repos.Badges.Create(ctx, badge); err != nil {
			return err
		}
	}
	return nil
}

func seedBlogPosts(ctx context.Context, repos *Repositories) error {
	count, err := repos.Blog.Count(ctx)
	if err != nil || count > 0 {
		return err
	}
	now := time.Now()
	seeds := []*model.BlogPost{
		{
			Title:       "Why Dhaka's Air Quality Matters",
			Content:     "Dhaka regularly ranks among the most polluted cities in the world. Small daily choices, from how we commute to how we dispose of waste, add up to measurable change.",
			Author:      "Eco Track Team",
			PublishedAt: now,
			CreatedAt:   now,
		},
		{
			Title:       "Getting Started with Tree Planting",
			Content:     "Native species like rain trees and mahogany thrive in Bangladeshi soil and need little care once established. Here is how to pick a spot and a species.",
			Author:      "Eco Track Team",
			PublishedAt: now,
			CreatedAt:   now,
		},
		{
			Title:       "Five Easy Ways to Cut Your Carbon Footprint",
			Content:     "Switch to public transport once a week, unplug idle electronics, carry a reusable bag, compost kitchen scraps, and track your progress here on Eco Track.",
			Author:      "Eco Track Team",
			PublishedAt: now,
			CreatedAt:   now,
		},
	}
	for _, post := range seeds {
		if err := repos.Blog.Create(ctx, post); err != nil {
			return err
		}
	}
	return nil
}

func seedEcoLocations(ctx context.Context, repos *Repositories) error {
	count, err := repos.EcoLocations.Count(ctx)
	if err != nil || count > 0 {
		return err
	}
	seeds := []*model.EcoLocation{
		{
			Name:        "Ramna Park",
			Description: "Large urban green space with walking trails and mature trees",
			Latitude:    23.7367,
			Longitude:   90.4031,
			Category:    "park",
			City:        "Dhaka",
			CreatedAt:   time.Now(),
		},
		{
			Name:        "Baldha Garden",
			Description: "Botanical garden housing rare plant species",
			Latitude:    23.7104,
			Longitude:   90.4180,
			Category:    "garden",
			City:        "Dhaka",
			CreatedAt:   time.Now(),
		},
		{
			Name:        "Foy's Lake Recycling Point",
			Description: "Community recycling drop-off near Foy's Lake",
			Latitude:    22.3686,
			Longitude:   91.7946,
			Category:    "recycling",
			City:        "Chattogram",
			CreatedAt:   time.Now(),
		},
	}
	for _, location := range seeds {
		if err := repos.EcoLocations.Create(ctx, location); err != nil {
			return err
		}
	}
	return nil
}

func seedQuizQuestions(ctx context.Context, repos *Repositories) error {
	existing, err := repos.QuizQuestions.FindAll(ctx)
	if err != nil || len(existing) > 0 {
		return err
	}
	now := time.Now()
	seeds := []*model.QuizQuestion{
		{
			QuestionText: "Which gas is the main contributor to global warming?",
			Difficulty:   "easy",
			Category:     "climate",
			Points:       10,
			Explanation:  "Carbon dioxide from burning fossil fuels is the largest driver of the greenhouse effect.",
			Answers: []model.Answer{
				{ID: primitive.NewObjectID(), AnswerText: "Carbon dioxide", IsCorrect: true, OrderIndex: 0},
				{ID: primitive.NewObjectID(), AnswerText: "Oxygen", OrderIndex: 1},
				{ID: primitive.NewObjectID(), AnswerText: "Nitrogen", OrderIndex: 2},
				{ID: primitive.NewObjectID(), AnswerText: "Helium", OrderIndex: 3},
			},
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			QuestionText: "How long does a plastic bottle take to decompose?",
			Difficulty:   "medium",
			Category:     "waste",
			Points:       10,
			Explanation:  "Most plastic bottles take around 450 years to break down in a landfill.",
			Answers: []model.Answer{
				{ID: primitive.NewObjectID(), AnswerText: "10 years", OrderIndex: 0},
				{ID: primitive.NewObjectID(), AnswerText: "50 years", OrderIndex: 1},
				{ID: primitive.NewObjectID(), AnswerText: "About 450 years", IsCorrect: true, OrderIndex: 2},
				{ID: primitive.NewObjectID(), AnswerText: "It never decomposes", OrderIndex: 3},
			},
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			QuestionText: "Which transport mode emits the least CO2 per kilometer?",
			Difficulty:   "easy",
			Category:     "transport",
			Points:       10,
			Explanation:  "Cycling produces effectively zero operational emissions.",
			Answers: []model.Answer{
				{ID: primitive.NewObjectID(), AnswerText: "Private car", OrderIndex: 0},
				{ID: primitive.NewObjectID(), AnswerText: "Bicycle", IsCorrect: true, OrderIndex: 1},
				{ID: primitive.NewObjectID(), AnswerText: "Motorbike", OrderIndex: 2},
				{ID: primitive.NewObjectID(), AnswerText: "Bus", OrderIndex: 3},
			},
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	for _, question := range seeds {
		if err := repos.QuizQuestions.Create(ctx, question); err != nil {
			return err
		}
	}
	return nil
}
