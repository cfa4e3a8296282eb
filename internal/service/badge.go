package service

import (
	"context"
	"fmt"
	"time"

	"ecotrack/internal/model"
	"ecotrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// eligibilityCounts are the per-user aggregates badge rules are evaluated
// against.
type eligibilityCounts struct {
	QuizAttempts        int64
	CarbonLogs          int64
	CompletedChallenges int64
	CommunityPosts      int64
}

// requirementRules maps each known requirement to its predicate. A
// requirement missing from this table never matches, so badge definitions
// with unimplemented requirements sit dormant instead of erroring.
var requirementRules = map[model.Requirement]func(eligibilityCounts) bool{
	model.RequirementQuizCount1:     func(c eligibilityCounts) bool { return c.QuizAttempts >= 1 },
	model.RequirementQuizCount10:    func(c eligibilityCounts) bool { return c.QuizAttempts >= 10 },
	model.RequirementCarbonCalc1:    func(c eligibilityCounts) bool { return c.CarbonLogs >= 1 },
	model.RequirementChallengeCount: func(c eligibilityCounts) bool { return c.CompletedChallenges >= 5 },
	model.RequirementPostCount1:     func(c eligibilityCounts) bool { return c.CommunityPosts >= 1 },
}

// BadgeService evaluates and grants badges.
type BadgeService struct {
	badges     repository.IBadgeRepository
	userBadges repository.IUserBadgeRepository
	attempts   repository.IQuizAttemptRepository
	footprints repository.ICarbonRepository
	challenges repository.IChallengeRepository
	posts      repository.IPostRepository
}

func NewBadgeService(
	badges repository.IBadgeRepository,
	userBadges repository.IUserBadgeRepository,
	attempts repository.IQuizAttemptRepository,
	footprints repository.ICarbonRepository,
	challenges repository.IChallengeRepository,
	posts repository.IPostRepository,
) *BadgeService {
	return &BadgeService{
		badges:     badges,
		userBadges: userBadges,
		attempts:   attempts,
		footprints: footprints,
		challenges: challenges,
		posts:      posts,
	}
}

func (s *BadgeService) ListBadges(ctx context.Context) ([]*model.Badge, error) {
	return s.badges.FindAll(ctx)
}

// ListUserBadges joins the user's earned badges with their definitions.
func (s *BadgeService) ListUserBadges(ctx context.Context, userID primitive.ObjectID) ([]model.EarnedBadgeResponse, error) {
	var (
		earned      []*model.UserBadge
		definitions []*model.Badge
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		earned, err = s.userBadges.FindByUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		definitions, err = s.badges.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]*model.Badge, len(definitions))
	for _, b := range definitions {
		byID[b.ID] = b
	}
	responses := make([]model.EarnedBadgeResponse, 0, len(earned))
	for _, ub := range earned {
		badge, ok := byID[ub.BadgeID]
		if !ok {
			continue // definition deleted after the grant
		}
		responses = append(responses, model.EarnedBadgeResponse{
			ID:          badge.ID.Hex(),
			Name:        badge.Name,
			Description: badge.Description,
			Icon:        badge.Icon,
			EarnedAt:    ub.EarnedAt,
		})
	}
	return responses, nil
}

func (s *BadgeService) CreateBadge(ctx context.Context, req *model.CreateBadgeRequest) (*model.Badge, error) {
	badge := &model.Badge{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Requirement: model.Requirement(req.Requirement),
		CreatedAt:   time.Now(),
	}
	if err := s.badges.Create(ctx, badge); err != nil {
		return nil, err
	}
	return badge, nil
}

// Evaluate grants every badge the user is newly eligible for and returns
// how many were granted. All grants for one call go through a single batch
// insert: it either succeeds entirely or grants nothing. The pre-check
// against already-earned badges plus the unique (userId, badgeId) index
// make repeat calls idempotent.
func (s *BadgeService) Evaluate(ctx context.Context, userID primitive.ObjectID) (int, error) {
	counts, err := s.fetchCounts(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch eligibility counts: %w", err)
	}

	var (
		definitions []*model.Badge
		earned      []*model.UserBadge
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		definitions, err = s.badges.FindAll(gctx)
		return err
	})
	g.Go(func() (err error) {
		earned, err = s.userBadges.FindByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}

	earnedIDs := make(map[primitive.ObjectID]struct{}, len(earned))
	for _, ub := range earned {
		earnedIDs[ub.BadgeID] = struct{}{}
	}

	var toAward []*model.UserBadge
	for _, badge := range definitions {
		if _, already := earnedIDs[badge.ID]; already {
			continue
		}
		rule, known := requirementRules[badge.Requirement]
		if !known || !rule(counts) {
			continue
		}
		toAward = append(toAward, &model.UserBadge{UserID: userID, BadgeID: badge.ID})
	}

	if len(toAward) == 0 {
		return 0, nil
	}
	if err := s.userBadges.InsertMany(ctx, toAward); err != nil {
		return 0, fmt.Errorf("failed to grant badges: %w", err)
	}
	return len(toAward), nil
}

// fetchCounts issues the four aggregate queries concurrently.
func (s *BadgeService) fetchCounts(ctx context.Context, userID primitive.ObjectID) (eligibilityCounts, error) {
	var counts eligibilityCounts
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts.QuizAttempts, err = s.attempts.CountByUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		counts.CarbonLogs, err = s.footprints.CountByUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		counts.CompletedChallenges, err = s.challenges.CountCompletedByUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		counts.CommunityPosts, err = s.posts.CountByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return eligibilityCounts{}, err
	}
	return counts, nil
}
