package service

import (
	"context"
	"math"
	"sort"

	"ecotrack/internal/config"
	"ecotrack/internal/model"
	"ecotrack/internal/repository"

	"golang.org/x/sync/errgroup"
)

// LeaderboardService ranks every user by composite score. Scores are fully
// recomputed on each call; data volumes are small enough that no cached or
// incremental ranking is maintained.
type LeaderboardService struct {
	users      repository.IUserRepository
	attempts   repository.IQuizAttemptRepository
	challenges repository.IChallengeRepository
	userBadges repository.IUserBadgeRepository
}

func NewLeaderboardService(
	users repository.IUserRepository,
	attempts repository.IQuizAttemptRepository,
	challenges repository.IChallengeRepository,
	userBadges repository.IUserBadgeRepository,
) *LeaderboardService {
	return &LeaderboardService{
		users:      users,
		attempts:   attempts,
		challenges: challenges,
		userBadges: userBadges,
	}
}

// Rank returns the top entries, best first, capped at the configured
// leaderboard size. The second return value is the total user count.
func (s *LeaderboardService) Rank(ctx context.Context) ([]model.LeaderboardEntry, int, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]model.LeaderboardEntry, len(users))
	g, gctx := errgroup.WithContext(ctx)
	for i, user := range users {
		i, user := i, user
		g.Go(func() error {
			entry, err := s.buildEntry(gctx, user)
			if err != nil {
				return err
			}
			entries[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	// Stable sort: ties keep encounter order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CompositeScore() > entries[j].CompositeScore()
	})

	total := len(entries)
	if total > config.LeaderboardLimit {
		entries = entries[:config.LeaderboardLimit]
	}
	return entries, total, nil
}

// buildEntry issues the three per-user sub-queries concurrently.
func (s *LeaderboardService) buildEntry(ctx context.Context, user *model.User) (model.LeaderboardEntry, error) {
	var (
		attempts   []*model.QuizAttempt
		challenges int64
		badges     int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		attempts, err = s.attempts.FindAllByUser(gctx, user.ID)
		return err
	})
	g.Go(func() (err error) {
		challenges, err = s.challenges.CountCompletedByUser(gctx, user.ID)
		return err
	})
	g.Go(func() (err error) {
		badges, err = s.userBadges.CountByUser(gctx, user.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.LeaderboardEntry{}, err
	}

	fullName := user.FullName
	if fullName == "" {
		fullName = "Anonymous"
	}
	return model.LeaderboardEntry{
		UserID:          user.ID.Hex(),
		FullName:        fullName,
		Email:           user.Email,
		TotalQuizzes:    len(attempts),
		AvgQuizScore:    averageAccuracy(attempts),
		TotalChallenges: int(challenges),
		BadgeCount:      int(badges),
	}, nil
}

// averageAccuracy is the rounded mean of correct/total across attempts, in
// percent. Zero when there are no attempts.
func averageAccuracy(attempts []*model.QuizAttempt) int {
	if len(attempts) == 0 {
		return 0
	}
	var sum float64
	for _, a := range attempts {
		if a.TotalQuestions > 0 {
			sum += float64(a.CorrectAnswers) / float64(a.TotalQuestions) * 100
		}
	}
	return int(math.Round(sum / float64(len(attempts))))
}
