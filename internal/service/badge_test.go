package service

import (
	"context"
	"testing"
	"time"

	"ecotrack/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type badgeFixture struct {
	svc        *BadgeService
	attempts   *fakeAttemptRepo
	carbon     *fakeCarbonRepo
	challenges *fakeChallengeRepo
	posts      *fakePostRepo
	badges     *fakeBadgeRepo
	userBadges *fakeUserBadgeRepo
}

func newBadgeFixture(t *testing.T, requirements ...model.Requirement) *badgeFixture {
	t.Helper()
	f := &badgeFixture{
		attempts:   &fakeAttemptRepo{},
		carbon:     &fakeCarbonRepo{},
		challenges: &fakeChallengeRepo{},
		posts:      &fakePostRepo{},
		badges:     &fakeBadgeRepo{},
		userBadges: &fakeUserBadgeRepo{},
	}
	for _, req := range requirements {
		badge := &model.Badge{Name: string(req), Requirement: req, CreatedAt: time.Now()}
		if err := f.badges.Create(context.Background(), badge); err != nil {
			t.Fatalf("seed badge: %v", err)
		}
	}
	f.svc = NewBadgeService(f.badges, f.userBadges, f.attempts, f.carbon, f.challenges, f.posts)
	return f
}

func (f *badgeFixture) addAttempts(userID primitive.ObjectID, n int) {
	for i := 0; i < n; i++ {
		f.attempts.attempts = append(f.attempts.attempts, &model.QuizAttempt{
			ID: primitive.NewObjectID(), UserID: userID, TotalQuestions: 10, CorrectAnswers: 7,
		})
	}
}

func (f *badgeFixture) addCompletedChallenges(userID primitive.ObjectID, n int) {
	for i := 0; i < n; i++ {
		f.challenges.challenges = append(f.challenges.challenges, &model.DailyChallenge{
			ID: primitive.NewObjectID(), UserID: userID, Completed: true,
		})
	}
}

func TestEvaluateGrantsFirstQuizBadge(t *testing.T) {
	f := newBadgeFixture(t,
		model.RequirementQuizCount1,
		model.RequirementQuizCount10,
		model.RequirementCarbonCalc1,
		model.RequirementChallengeCount,
		model.RequirementPostCount1,
	)
	userID := primitive.NewObjectID()
	f.addAttempts(userID, 1)

	awarded, err := f.svc.Evaluate(context.Background(), userID)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if awarded != 1 {
		t.Fatalf("awarded = %d, want 1", awarded)
	}

	earned, _ := f.userBadges.FindByUser(context.Background(), userID)
	if len(earned) != 1 {
		t.Fatalf("earned = %d, want 1", len(earned))
	}
	if earned[0].BadgeID != f.badges.badges[0].ID {
		t.Errorf("earned badge %s, want the first-quiz badge", earned[0].BadgeID.Hex())
	}
}

func TestEvaluateGrantsAllEligible(t *testing.T) {
	f := newBadgeFixture(t,
		model.RequirementQuizCount1,
		model.RequirementQuizCount10,
		model.RequirementCarbonCalc1,
		model.RequirementChallengeCount,
		model.RequirementPostCount1,
	)
	userID := primitive.NewObjectID()
	f.addAttempts(userID, 10)
	f.carbon.footprints = append(f.carbon.footprints, &model.CarbonFootprint{
		ID: primitive.NewObjectID(), UserID: userID,
	})
	f.addCompletedChallenges(userID, 5)
	// Incomplete challenges must not count.
	f.challenges.challenges = append(f.challenges.challenges, &model.DailyChallenge{
		ID: primitive.NewObjectID(), UserID: userID,
	})
	f.posts.posts = append(f.posts.posts, &model.CommunityPost{
		ID: primitive.NewObjectID(), UserID: userID,
	})

	awarded, err := f.svc.Evaluate(context.Background(), userID)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if awarded != 5 {
		t.Fatalf("awarded = %d, want 5", awarded)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	f := newBadgeFixture(t, model.RequirementQuizCount1, model.RequirementCarbonCalc1)
	userID := primitive.NewObjectID()
	f.addAttempts(userID, 3)

	first, err := f.svc.Evaluate(context.Background(), userID)
	if err != nil {
		t.Fatalf("first Evaluate: %v", err)
	}
	if first != 1 {
		t.Fatalf("first awarded = %d, want 1", first)
	}

	second, err := f.svc.Evaluate(context.Background(), userID)
	if err != nil {
		t.Fatalf("second Evaluate: %v", err)
	}
	if second != 0 {
		t.Errorf("second awarded = %d, want 0", second)
	}
	earned, _ := f.userBadges.FindByUser(context.Background(), userID)
	if len(earned) != 1 {
		t.Errorf("earned = %d, want 1", len(earned))
	}
}

func TestEvaluateIgnoresUnknownRequirements(t *testing.T) {
	f := newBadgeFixture(t,
		model.RequirementChallengeStreak7,
		model.RequirementCarbonReduction10,
	)
	userID := primitive.NewObjectID()
	f.addAttempts(userID, 50)
	f.addCompletedChallenges(userID, 50)

	awarded, err := f.svc.Evaluate(context.Background(), userID)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if awarded != 0 {
		t.Errorf("awarded = %d, want 0 for dormant requirements", awarded)
	}
}

func TestListUserBadgesJoinsDefinitions(t *testing.T) {
	f := newBadgeFixture(t, model.RequirementQuizCount1)
	userID := primitive.NewObjectID()
	f.addAttempts(userID, 1)
	if _, err := f.svc.Evaluate(context.Background(), userID); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	earned, err := f.svc.ListUserBadges(context.Background(), userID)
	if err != nil {
		t.Fatalf("ListUserBadges: %v", err)
	}
	if len(earned) != 1 {
		t.Fatalf("earned = %d, want 1", len(earned))
	}
	if earned[0].Name != string(model.RequirementQuizCount1) {
		t.Errorf("name = %q, want definition name", earned[0].Name)
	}
	if earned[0].EarnedAt.IsZero() {
		t.Error("earned_at not stamped")
	}
}
